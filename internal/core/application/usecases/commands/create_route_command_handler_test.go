package commands_test

import (
	"testing"
	"time"

	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/route"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func routeCommandFixture(t *testing.T) commands.CreateRouteCommand {
	t.Helper()

	start, err := kernel.NewGeoPoint(52.2297, 21.0122)
	require.NoError(t, err)
	end, err := kernel.NewGeoPoint(52.5200, 13.4050)
	require.NoError(t, err)

	departure := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCreateRouteCommand(start, end,
		departure, departure.Add(48*time.Hour), carrier.TypeBox, 1300.0, kernel.CurrencyUSD)
	require.NoError(t, err)
	return cmd
}

func TestNewCreateRouteCommand_DatesOutOfOrder(t *testing.T) {
	start, err := kernel.NewGeoPoint(52.2297, 21.0122)
	require.NoError(t, err)
	end, err := kernel.NewGeoPoint(52.5200, 13.4050)
	require.NoError(t, err)

	departure := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	_, err = commands.NewCreateRouteCommand(start, end,
		departure, departure.Add(-time.Hour), carrier.TypeBox, 1300.0, kernel.CurrencyEUR)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateRouteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := routeCommandFixture(t)

	estimator := new(MockDistanceEstimator)
	converter := new(MockCurrencyConverter)
	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)

	mock.InOrder(
		estimator.On("EstimateDistance", ctx, cmd.StartPoint(), cmd.EndPoint()).
			Return(574500.0, nil).Once(),
		converter.On("ConvertToEUR", ctx, 1300.0, kernel.CurrencyUSD).Return(1200.0, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Add", ctx, mock.AnythingOfType("*route.Route")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateRouteCommandHandler(factory, converter, estimator)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, route.StatusAwaitingDispatch, created.Status())
	require.InDelta(t, 574500.0, created.DistanceMeters(), 0)
	require.InDelta(t, 1200.0, created.Price(), 0)
	require.Nil(t, created.CarrierID())
	require.Nil(t, created.CarrierFee())
	estimator.AssertExpectations(t)
	converter.AssertExpectations(t)
	routeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateRouteCommandHandler_Handle_EstimatorFails(t *testing.T) {
	ctx := t.Context()
	cmd := routeCommandFixture(t)

	estimator := new(MockDistanceEstimator)
	estimator.On("EstimateDistance", ctx, cmd.StartPoint(), cmd.EndPoint()).
		Return(0.0, errs.NewUpstreamFailureError("routing-api", errs.ErrUpstreamFailure)).Once()

	converter := new(MockCurrencyConverter)
	factory := new(MockRouteUoWFactory)

	handler := commands.NewCreateRouteCommandHandler(factory, converter, estimator)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUpstreamFailure)
	converter.AssertNotCalled(t, "ConvertToEUR", mock.Anything, mock.Anything, mock.Anything)
	factory.AssertNotCalled(t, "Create")
}

package commands_test

import (
	"testing"

	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateCarrierCommand_RateWithoutCurrency(t *testing.T) {
	rate := 42.0

	_, err := commands.NewUpdateCarrierCommand(kernel.NewUUID(),
		nil, nil, nil, nil, nil, &rate, nil)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsUnprocessed)
	require.ErrorIs(t, err, commands.ErrCurrencyRequiredForRate)
}

func TestUpdateCarrierCommandHandler_Handle_ConvertsRate(t *testing.T) {
	ctx := t.Context()

	testCarrier := availableCarrier(t, carrier.TypeBox)
	rate := 42.0
	currency := kernel.CurrencyUSD

	cmd, err := commands.NewUpdateCarrierCommand(testCarrier.ID(),
		nil, nil, nil, nil, nil, &rate, &currency)
	require.NoError(t, err)

	converter := new(MockCurrencyConverter)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		converter.On("ConvertToEUR", ctx, 42.0, kernel.CurrencyUSD).Return(38.5, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		carrierRepo.On("Get", ctx, testCarrier.ID()).Return(testCarrier, nil).Once(),
		carrierRepo.On("Update", ctx, mock.AnythingOfType("*carrier.Carrier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCarrierCommandHandler(factory, converter)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.InDelta(t, 38.5, updated.Rate(), 0)
	converter.AssertExpectations(t)
	carrierRepo.AssertExpectations(t)
}

func TestUpdateCarrierCommandHandler_Handle_BusyCarrierRejected(t *testing.T) {
	ctx := t.Context()

	testCarrier := availableCarrier(t, carrier.TypeBox)
	require.NoError(t, testCarrier.MarkBusy())

	model := "Iveco Daily"
	cmd, err := commands.NewUpdateCarrierCommand(testCarrier.ID(),
		nil, &model, nil, nil, nil, nil, nil)
	require.NoError(t, err)

	converter := new(MockCurrencyConverter)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		carrierRepo.On("Get", ctx, testCarrier.ID()).Return(testCarrier, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCarrierCommandHandler(factory, converter)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	carrierRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateCarrierCommandHandler_Handle_ReleaseBusyCarrier(t *testing.T) {
	ctx := t.Context()

	testCarrier := availableCarrier(t, carrier.TypeBox)
	require.NoError(t, testCarrier.MarkBusy())

	status := carrier.StatusAvailable
	cmd, err := commands.NewUpdateCarrierCommand(testCarrier.ID(),
		nil, nil, nil, nil, &status, nil, nil)
	require.NoError(t, err)

	converter := new(MockCurrencyConverter)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		carrierRepo.On("Get", ctx, testCarrier.ID()).Return(testCarrier, nil).Once(),
		carrierRepo.On("Update", ctx, mock.AnythingOfType("*carrier.Carrier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCarrierCommandHandler(factory, converter)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, carrier.StatusAvailable, updated.Status())
}

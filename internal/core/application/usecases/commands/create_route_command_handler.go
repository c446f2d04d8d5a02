package commands

import (
	"context"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/route"
	"transport/internal/core/ports"
)

// CreateRouteCommandHandler handles the business logic for opening a
// transport order. Two collaborators run before anything is persisted: the
// distance estimator supplies the driving distance between the endpoints and
// the currency converter normalizes the price to EUR. Either failing aborts
// the command with errs.ErrUpstreamFailure.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	converter  ports.CurrencyConverter
	estimator  ports.DistanceEstimator
}

// NewCreateRouteCommandHandler creates a handler for opening transport orders.
func NewCreateRouteCommandHandler(
	uowFactory RouteUoWFactory,
	converter ports.CurrencyConverter,
	estimator ports.DistanceEstimator,
) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
		converter:  converter,
		estimator:  estimator,
	}
}

// Handle processes the route creation command. The route starts in
// AWAITING_DISPATCH with no carrier and no fee.
func (h CreateRouteCommandHandler) Handle(
	ctx context.Context, cmd CreateRouteCommand,
) (*route.Route, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	distance, err := h.estimator.EstimateDistance(ctx, cmd.StartPoint(), cmd.EndPoint())
	if err != nil {
		return nil, err
	}

	price, err := h.converter.ConvertToEUR(ctx, cmd.Price(), cmd.Currency())
	if err != nil {
		return nil, err
	}

	newRoute, err := route.NewRoute(
		kernel.NewUUID(),
		cmd.StartPoint(),
		cmd.EndPoint(),
		distance,
		cmd.DepartureDate(),
		cmd.CompletionDate(),
		cmd.RequiredCarrierType(),
		price,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RouteRepository().Add(ctx, newRoute); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newRoute, nil
}

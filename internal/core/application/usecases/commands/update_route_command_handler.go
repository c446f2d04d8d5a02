package commands

import (
	"context"

	"transport/internal/core/domain/model/route"
	"transport/internal/core/ports"
)

// UpdateRouteCommandHandler handles basic-info edits of awaiting routes.
// The aggregate refuses edits once the route is in progress or completed.
type UpdateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	converter  ports.CurrencyConverter
}

// NewUpdateRouteCommandHandler creates a handler for route edits.
func NewUpdateRouteCommandHandler(
	uowFactory RouteUoWFactory,
	converter ports.CurrencyConverter,
) UpdateRouteCommandHandler {
	return UpdateRouteCommandHandler{
		uowFactory: uowFactory,
		converter:  converter,
	}
}

// Handle processes the route update command. The price is re-converted to
// EUR only when both price and currency are supplied together. Returns
// errs.ErrObjectNotFound for an unknown route and errs.ErrInvalidTransition
// for a route past AWAITING_DISPATCH.
func (h UpdateRouteCommandHandler) Handle(
	ctx context.Context, cmd UpdateRouteCommand,
) (*route.Route, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	patch := route.BasicInfoPatch{
		DepartureDate:       cmd.DepartureDate(),
		CompletionDate:      cmd.CompletionDate(),
		RequiredCarrierType: cmd.RequiredCarrierType(),
	}

	if cmd.Price() != nil && cmd.Currency() != nil {
		price, err := h.converter.ConvertToEUR(ctx, *cmd.Price(), *cmd.Currency())
		if err != nil {
			return nil, err
		}
		patch.Price = &price
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()

	aggregate, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.UpdateBasicInfo(patch); err != nil {
		return nil, err
	}

	if err = routeRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

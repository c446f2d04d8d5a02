package commands

import (
	"context"
	"errors"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/route"
	"transport/internal/core/ports"
)

// DeleteRouteCommandHandler handles route removal. Deleting an in-progress
// route would strand its carrier in BUSY forever, so the handler releases
// the carrier in the same transaction.
type DeleteRouteCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteRouteCommandHandler creates a handler for route removal.
func NewDeleteRouteCommandHandler(uowFactory UoWFactory) DeleteRouteCommandHandler {
	return DeleteRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route delete command. Returns errs.ErrObjectNotFound
// for an unknown route.
func (h DeleteRouteCommandHandler) Handle(ctx context.Context, cmd DeleteRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()

	aggregate, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if aggregate.Status() == route.StatusInProgress && aggregate.CarrierID() != nil {
		err = uow.CarrierRepository().CompareAndSetStatus(ctx, *aggregate.CarrierID(),
			carrier.StatusBusy, carrier.StatusAvailable)
		// The carrier may have drifted back to AVAILABLE already. The
		// delete should not fail on that.
		if err != nil && !errors.Is(err, ports.ErrStatusConflict) {
			return err
		}
	}

	if err = routeRepo.Delete(ctx, cmd.RouteID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

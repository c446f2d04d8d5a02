package commands

import (
	"context"
	"errors"
	"fmt"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/route"
	"transport/internal/core/ports"
	"transport/internal/pkg/errs"
)

// UpdateRouteStatusCommandHandler handles lifecycle updates of a route:
// recording actual timestamps and advancing IN_PROGRESS to COMPLETED.
// Completion releases the bound carrier back to AVAILABLE in the same
// transaction, through conditional writes on both rows, so a racing second
// completion loses cleanly instead of double-releasing the carrier.
type UpdateRouteStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateRouteStatusCommandHandler creates a handler for route lifecycle updates.
func NewUpdateRouteStatusCommandHandler(uowFactory UoWFactory) UpdateRouteStatusCommandHandler {
	return UpdateRouteStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command. The aggregate enforces the
// transition table and the set-once timestamp rules; this handler only
// decides which persistence path the result takes. A non-completing update
// is a plain save. A completing update goes through MarkCompleted plus the
// carrier's BUSY->AVAILABLE flip, both conditional.
func (h UpdateRouteStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateRouteStatusCommand,
) (*route.Route, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
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

	completing := aggregate.Status() != route.StatusCompleted &&
		cmd.Target() == route.StatusCompleted

	err = aggregate.ApplyStatusUpdate(route.StatusUpdate{
		Target:               cmd.Target(),
		DepartureDateActual:  cmd.DepartureDateActual(),
		CompletionDateActual: cmd.CompletionDateActual(),
	})
	if err != nil {
		return nil, err
	}

	if completing {
		if err = h.complete(ctx, uow, aggregate); err != nil {
			return nil, err
		}
	} else if err = routeRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// complete persists the COMPLETED flip and releases the carrier. Both writes
// are conditional on the stored statuses still being IN_PROGRESS and BUSY.
func (h UpdateRouteStatusCommandHandler) complete(
	ctx context.Context, uow UoW, aggregate *route.Route,
) error {
	err := uow.RouteRepository().MarkCompleted(ctx, aggregate)
	if errors.Is(err, ports.ErrStatusConflict) {
		return errs.NewInvalidTransitionErrorWithCause("route completion",
			fmt.Errorf("route %s is no longer in progress", aggregate.ID()))
	}
	if err != nil {
		return err
	}

	carrierID := aggregate.CarrierID()
	if carrierID == nil {
		return errs.NewInvalidTransitionError("completed route has no carrier to release")
	}

	err = uow.CarrierRepository().CompareAndSetStatus(ctx, *carrierID,
		carrier.StatusBusy, carrier.StatusAvailable)
	if errors.Is(err, ports.ErrStatusConflict) {
		return errs.NewInvalidTransitionErrorWithCause("carrier release",
			fmt.Errorf("carrier %s is not busy", carrierID))
	}

	return err
}

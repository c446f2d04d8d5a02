package commands

import (
	"context"
	"errors"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/route"
	"transport/internal/core/domain/services"
	"transport/internal/core/ports"
)

// AssignCarrierCommandHandler orchestrates dispatching a carrier onto a
// route. The in-memory checks run through the domain dispatcher; the writes
// then go through conditional updates inside a single transaction, so two
// concurrent assignments of the same carrier (or the same route) resolve to
// exactly one winner regardless of interleaving.
//
// Example:
//
//	handler := NewAssignCarrierCommandHandler(uowFactory)
//	cmd, _ := NewAssignCarrierCommand(routeID, carrierID)
//	dispatched, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrCarrierUnavailable):
//	    log.Println("carrier already taken")
//	case errors.Is(err, route.ErrCarrierAlreadyAssigned):
//	    log.Println("route already dispatched")
//	}
type AssignCarrierCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignCarrierCommandHandler creates a handler for carrier assignment.
// Requires a UoWFactory for coordinating transactional updates across both
// repositories.
func NewAssignCarrierCommandHandler(uowFactory UoWFactory) AssignCarrierCommandHandler {
	return AssignCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command. Loads both aggregates, runs the
// dispatcher's compatibility checks, then persists the pair with
// first-writer-wins conditional updates: the carrier row must still be
// AVAILABLE and the route row must still be AWAITING_DISPATCH with no
// carrier. A concurrent winner surfaces as services.ErrCarrierUnavailable or
// route.ErrCarrierAlreadyAssigned, same as if it had committed first.
func (h AssignCarrierCommandHandler) Handle(
	ctx context.Context, cmd AssignCarrierCommand,
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
	carrierRepo := uow.CarrierRepository()

	routeAggregate, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return nil, err
	}

	carrierAggregate, err := carrierRepo.Get(ctx, cmd.CarrierID())
	if err != nil {
		return nil, err
	}

	if err = services.NewDispatcher().Dispatch(routeAggregate, carrierAggregate); err != nil {
		return nil, err
	}

	err = carrierRepo.CompareAndSetStatus(ctx, cmd.CarrierID(),
		carrier.StatusAvailable, carrier.StatusBusy)
	if errors.Is(err, ports.ErrStatusConflict) {
		return nil, services.ErrCarrierUnavailable
	}
	if err != nil {
		return nil, err
	}

	err = routeRepo.MarkDispatched(ctx, routeAggregate)
	if errors.Is(err, ports.ErrStatusConflict) {
		return nil, route.ErrCarrierAlreadyAssigned
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return routeAggregate, nil
}

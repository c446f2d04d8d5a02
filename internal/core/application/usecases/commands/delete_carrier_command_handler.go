package commands

import (
	"context"
	"fmt"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/pkg/errs"
)

// DeleteCarrierCommandHandler handles carrier removal. A BUSY carrier is
// still bound to an in-progress route, so deleting it would orphan the
// route's carrier reference; the delete is refused until the route completes.
type DeleteCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewDeleteCarrierCommandHandler creates a handler for carrier removal.
func NewDeleteCarrierCommandHandler(uowFactory CarrierUoWFactory) DeleteCarrierCommandHandler {
	return DeleteCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the carrier delete command. Returns errs.ErrObjectNotFound
// for an unknown carrier and errs.ErrInvalidTransition for a BUSY one.
func (h DeleteCarrierCommandHandler) Handle(ctx context.Context, cmd DeleteCarrierCommand) error {
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

	carrierRepo := uow.CarrierRepository()

	aggregate, err := carrierRepo.Get(ctx, cmd.CarrierID())
	if err != nil {
		return err
	}

	if aggregate.Status() == carrier.StatusBusy {
		return errs.NewInvalidTransitionErrorWithCause(
			"can not delete carrier which is fulfilling a route",
			fmt.Errorf("carrier %s is busy", aggregate.ID()))
	}

	if err = carrierRepo.Delete(ctx, cmd.CarrierID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/ports"
)

// UpdateCarrierCommandHandler handles partial carrier updates. A new rate is
// normalized to EUR before it reaches the aggregate, and the aggregate's
// busy-edit guard decides whether the patch is allowed at all.
type UpdateCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
	converter  ports.CurrencyConverter
}

// NewUpdateCarrierCommandHandler creates a handler for carrier updates.
func NewUpdateCarrierCommandHandler(
	uowFactory CarrierUoWFactory,
	converter ports.CurrencyConverter,
) UpdateCarrierCommandHandler {
	return UpdateCarrierCommandHandler{
		uowFactory: uowFactory,
		converter:  converter,
	}
}

// Handle processes the carrier update command. Loads the aggregate, merges
// the patch and persists the result in one transaction. Returns
// errs.ErrObjectNotFound for an unknown carrier, errs.ErrInvalidTransition
// when a BUSY carrier is edited without releasing it, and errs.ErrConflict
// when the new plate collides with another vehicle.
func (h UpdateCarrierCommandHandler) Handle(
	ctx context.Context, cmd UpdateCarrierCommand,
) (*carrier.Carrier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	patch := carrier.Patch{
		LicensePlate:     cmd.LicensePlate(),
		Model:            cmd.Model(),
		Type:             cmd.Type(),
		RegistrationDate: cmd.RegistrationDate(),
		Status:           cmd.Status(),
	}

	if cmd.Rate() != nil {
		rate, err := h.converter.ConvertToEUR(ctx, *cmd.Rate(), *cmd.Currency())
		if err != nil {
			return nil, err
		}
		patch.Rate = &rate
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carrierRepo := uow.CarrierRepository()

	aggregate, err := carrierRepo.Get(ctx, cmd.CarrierID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Apply(patch); err != nil {
		return nil, err
	}

	if err = carrierRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

package commands

import (
	"context"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/ports"
)

// CreateCarrierCommandHandler handles the business logic for carrier
// registration. The per-kilometre rate is normalized to EUR through the
// currency converter before the aggregate is built, so storage only ever
// sees EUR amounts.
//
// Example:
//
//	handler := NewCreateCarrierCommandHandler(uowFactory, converter)
//	cmd, _ := NewCreateCarrierCommand("XYZ789", "Mercedes Sprinter",
//	    carrier.TypeBox, regDate, carrier.StatusAvailable, 35.75, kernel.CurrencyEUR)
//	created, err := handler.Handle(ctx, cmd)
type CreateCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
	converter  ports.CurrencyConverter
}

// NewCreateCarrierCommandHandler creates a handler for carrier registration.
func NewCreateCarrierCommandHandler(
	uowFactory CarrierUoWFactory,
	converter ports.CurrencyConverter,
) CreateCarrierCommandHandler {
	return CreateCarrierCommandHandler{
		uowFactory: uowFactory,
		converter:  converter,
	}
}

// Handle processes the carrier registration command. Converts the rate to
// EUR, builds the aggregate and persists it. A duplicate license plate
// surfaces as errs.ErrConflict from the repository.
func (h CreateCarrierCommandHandler) Handle(
	ctx context.Context, cmd CreateCarrierCommand,
) (*carrier.Carrier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	rate, err := h.converter.ConvertToEUR(ctx, cmd.Rate(), cmd.Currency())
	if err != nil {
		return nil, err
	}

	newCarrier, err := carrier.NewCarrier(
		kernel.NewUUID(),
		cmd.LicensePlate(),
		cmd.Model(),
		cmd.Type(),
		cmd.RegistrationDate(),
		cmd.Status(),
		rate,
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

	if err = uow.CarrierRepository().Add(ctx, newCarrier); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newCarrier, nil
}

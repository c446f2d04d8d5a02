package commands

import (
	"errors"
	"time"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var (
	ErrUpdateCarrierCommandIsNotConstructed = errors.New(
		"UpdateCarrierCommand must be created via NewUpdateCarrierCommand constructor",
	)
	// ErrCurrencyRequiredForRate rejects a rate change without the currency
	// it is quoted in: the stored rate is EUR and a bare number is ambiguous.
	ErrCurrencyRequiredForRate = errs.NewUnprocessableError(
		"currency has to be defined in order to update rate",
	)
)

// UpdateCarrierCommand represents a partial update of a carrier record.
// Nil fields keep their stored value.
type UpdateCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID        kernel.UUID
	licensePlate     *string
	model            *string
	carrierType      *carrier.Type
	registrationDate *time.Time
	status           *carrier.Status
	rate             *float64
	currency         *kernel.CurrencyCode

	guard guard.ConstructorGuard
}

// NewUpdateCarrierCommand creates a command to patch an existing carrier.
// A rate without a currency is rejected with ErrCurrencyRequiredForRate;
// present enum fields must hold known values.
func NewUpdateCarrierCommand(
	carrierID kernel.UUID,
	licensePlate *string,
	model *string,
	carrierType *carrier.Type,
	registrationDate *time.Time,
	status *carrier.Status,
	rate *float64,
	currency *kernel.CurrencyCode,
) (UpdateCarrierCommand, error) {
	cmd := UpdateCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCarrierID(carrierID); err != nil {
		return UpdateCarrierCommand{}, err
	}

	if rate != nil && currency == nil {
		return UpdateCarrierCommand{}, ErrCurrencyRequiredForRate
	}
	if rate != nil && *rate <= 0 {
		return UpdateCarrierCommand{}, ErrRateIsInvalid
	}
	if carrierType != nil {
		if err := carrierType.Validate(); err != nil {
			return UpdateCarrierCommand{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return UpdateCarrierCommand{}, err
		}
	}
	if currency != nil {
		if err := currency.Validate(); err != nil {
			return UpdateCarrierCommand{}, err
		}
	}

	cmd.licensePlate = licensePlate
	cmd.model = model
	cmd.carrierType = carrierType
	cmd.registrationDate = registrationDate
	cmd.status = status
	cmd.rate = rate
	cmd.currency = currency

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCarrierCommandIsNotConstructed)
}

// CarrierID returns the identifier of the carrier to update.
func (c UpdateCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// LicensePlate returns the new plate, or nil to keep the stored one.
func (c UpdateCarrierCommand) LicensePlate() *string {
	return c.licensePlate
}

// Model returns the new model, or nil to keep the stored one.
func (c UpdateCarrierCommand) Model() *string {
	return c.model
}

// Type returns the new capability type, or nil to keep the stored one.
func (c UpdateCarrierCommand) Type() *carrier.Type {
	return c.carrierType
}

// RegistrationDate returns the new registration date, or nil to keep the stored one.
func (c UpdateCarrierCommand) RegistrationDate() *time.Time {
	return c.registrationDate
}

// Status returns the new availability status, or nil to keep the stored one.
func (c UpdateCarrierCommand) Status() *carrier.Status {
	return c.status
}

// Rate returns the new rate in the source currency, or nil to keep the stored one.
func (c UpdateCarrierCommand) Rate() *float64 {
	return c.rate
}

// Currency returns the currency the new rate is quoted in.
func (c UpdateCarrierCommand) Currency() *kernel.CurrencyCode {
	return c.currency
}

func (c *UpdateCarrierCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.carrierID = id
	return nil
}

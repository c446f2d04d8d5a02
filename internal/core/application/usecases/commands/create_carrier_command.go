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
	ErrCreateCarrierCommandIsNotConstructed = errors.New(
		"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
	)
	ErrRateIsInvalid = errs.NewValueIsInvalidError("rate must be greater than 0")
)

// CreateCarrierCommand represents a request to register a new fleet vehicle.
// The rate is carried together with its source currency; normalization to
// EUR happens in the handler, before the aggregate is built.
type CreateCarrierCommand struct { //nolint:recvcheck //using for validation
	licensePlate     string
	model            string
	carrierType      carrier.Type
	registrationDate time.Time
	status           carrier.Status
	rate             float64
	currency         kernel.CurrencyCode

	guard guard.ConstructorGuard
}

// NewCreateCarrierCommand creates a command to register a new carrier.
// Validates that all required fields are present and the enums are known
// values. Returns an error if any validation fails.
func NewCreateCarrierCommand(
	licensePlate string,
	model string,
	carrierType carrier.Type,
	registrationDate time.Time,
	status carrier.Status,
	rate float64,
	currency kernel.CurrencyCode,
) (CreateCarrierCommand, error) {
	cmd := CreateCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLicensePlate(licensePlate),
		cmd.setModel(model),
		cmd.setType(carrierType),
		cmd.setRegistrationDate(registrationDate),
		cmd.setStatus(status),
		cmd.setRate(rate),
		cmd.setCurrency(currency),
	); err != nil {
		return CreateCarrierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

// LicensePlate returns the unique plate of the vehicle.
func (c CreateCarrierCommand) LicensePlate() string {
	return c.licensePlate
}

// Model returns the vehicle model description.
func (c CreateCarrierCommand) Model() string {
	return c.model
}

// Type returns the cargo capability type.
func (c CreateCarrierCommand) Type() carrier.Type {
	return c.carrierType
}

// RegistrationDate returns when the vehicle was registered.
func (c CreateCarrierCommand) RegistrationDate() time.Time {
	return c.registrationDate
}

// Status returns the initial availability status.
func (c CreateCarrierCommand) Status() carrier.Status {
	return c.status
}

// Rate returns the per-kilometre rate in the source currency.
func (c CreateCarrierCommand) Rate() float64 {
	return c.rate
}

// Currency returns the currency the rate is quoted in.
func (c CreateCarrierCommand) Currency() kernel.CurrencyCode {
	return c.currency
}

func (c *CreateCarrierCommand) setLicensePlate(plate string) error {
	if plate == "" {
		return carrier.ErrLicensePlateIsRequired
	}
	c.licensePlate = plate
	return nil
}

func (c *CreateCarrierCommand) setModel(model string) error {
	if model == "" {
		return carrier.ErrModelIsRequired
	}
	c.model = model
	return nil
}

func (c *CreateCarrierCommand) setType(t carrier.Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.carrierType = t
	return nil
}

func (c *CreateCarrierCommand) setRegistrationDate(d time.Time) error {
	if d.IsZero() {
		return carrier.ErrRegistrationDateIsRequired
	}
	c.registrationDate = d
	return nil
}

func (c *CreateCarrierCommand) setStatus(s carrier.Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.status = s
	return nil
}

func (c *CreateCarrierCommand) setRate(rate float64) error {
	if rate <= 0 {
		return ErrRateIsInvalid
	}
	c.rate = rate
	return nil
}

func (c *CreateCarrierCommand) setCurrency(currency kernel.CurrencyCode) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	c.currency = currency
	return nil
}

package carrier

import (
	"errors"
	"fmt"
	"time"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

// Domain errors for carrier operations.
var (
	// ErrCarrierIsNotConstructed is returned when using an improperly initialized Carrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")
	// ErrLicensePlateIsRequired is returned when the license plate is empty.
	ErrLicensePlateIsRequired = errs.NewValueIsRequiredError("licensePlate")
	// ErrModelIsRequired is returned when the vehicle model is empty.
	ErrModelIsRequired = errs.NewValueIsRequiredError("model")
	// ErrRegistrationDateIsRequired is returned when the registration date is the zero time.
	ErrRegistrationDateIsRequired = errs.NewValueIsRequiredError("registrationDate")
	// ErrCarrierIsBusy is returned when modifying a BUSY carrier with anything
	// other than a release back to AVAILABLE.
	ErrCarrierIsBusy = errs.NewInvalidTransitionError("carrier is fulfilling a route and may only be released")
)

// Carrier is the aggregate root for a fleet vehicle. It owns the vehicle's
// identity, capability type, availability status and the per-kilometre rate
// the carrier fee is derived from.
//
// Invariants:
//   - license plate is non-empty (global uniqueness is enforced by storage)
//   - rate is a positive EUR amount per kilometre
//   - a BUSY carrier rejects every patch whose target status is not AVAILABLE
//   - AVAILABLE <-> BUSY flips happen only through MarkBusy and Release
type Carrier struct {
	id               kernel.UUID
	licensePlate     string
	model            string
	carrierType      Type
	registrationDate time.Time
	status           Status
	rate             float64
	guard            guard.ConstructorGuard
}

// NewCarrier creates a Carrier with the given attributes. The rate must
// already be normalized to EUR per kilometre. The status is persisted as
// given, which lets fleet imports register vehicles that are already out on
// the road.
func NewCarrier(
	id kernel.UUID,
	licensePlate string,
	model string,
	carrierType Type,
	registrationDate time.Time,
	status Status,
	rate float64,
) (*Carrier, error) {
	c := &Carrier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setLicensePlate(licensePlate),
		c.setModel(model),
		c.setType(carrierType),
		c.setRegistrationDate(registrationDate),
		c.setStatus(status),
		c.setRate(rate),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCarrier reconstructs a Carrier from its persisted state. It applies
// the same field validation as NewCarrier.
func RestoreCarrier(
	id kernel.UUID,
	licensePlate string,
	model string,
	carrierType Type,
	registrationDate time.Time,
	status Status,
	rate float64,
) (*Carrier, error) {
	return NewCarrier(id, licensePlate, model, carrierType, registrationDate, status, rate)
}

// Patch carries the optional fields of a carrier update. Nil means the field
// keeps its stored value. Rate is expected to be normalized to EUR before the
// patch reaches the domain.
type Patch struct {
	LicensePlate     *string
	Model            *string
	Type             *Type
	RegistrationDate *time.Time
	Status           *Status
	Rate             *float64
}

// Apply merges a patch into the carrier, enforcing the busy-edit guard:
// a BUSY carrier accepts only a patch whose target status is AVAILABLE.
func (c *Carrier) Apply(patch Patch) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.status == StatusBusy && (patch.Status == nil || *patch.Status != StatusAvailable) {
		return ErrCarrierIsBusy
	}

	if patch.LicensePlate != nil {
		if err := c.setLicensePlate(*patch.LicensePlate); err != nil {
			return err
		}
	}
	if patch.Model != nil {
		if err := c.setModel(*patch.Model); err != nil {
			return err
		}
	}
	if patch.Type != nil {
		if err := c.setType(*patch.Type); err != nil {
			return err
		}
	}
	if patch.RegistrationDate != nil {
		if err := c.setRegistrationDate(*patch.RegistrationDate); err != nil {
			return err
		}
	}
	if patch.Status != nil {
		if err := c.setStatus(*patch.Status); err != nil {
			return err
		}
	}
	if patch.Rate != nil {
		if err := c.setRate(*patch.Rate); err != nil {
			return err
		}
	}

	return nil
}

// MarkBusy flips the carrier to BUSY when it is dispatched onto a route.
func (c *Carrier) MarkBusy() error {
	if c.status != StatusAvailable {
		return errs.NewInvalidTransitionErrorWithCause("carrier is not available",
			fmt.Errorf("status is %s", c.status))
	}
	c.status = StatusBusy
	return nil
}

// Release flips the carrier back to AVAILABLE when its route completes.
func (c *Carrier) Release() error {
	if c.status != StatusBusy {
		return errs.NewInvalidTransitionErrorWithCause("carrier is not busy",
			fmt.Errorf("status is %s", c.status))
	}
	c.status = StatusAvailable
	return nil
}

// IsAvailable reports whether the carrier can be dispatched.
func (c *Carrier) IsAvailable() bool {
	return c.status == StatusAvailable
}

// IsEqual compares carriers by identity.
func (c *Carrier) IsEqual(other *Carrier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// Validate checks the Carrier was built through NewCarrier.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// ID returns the carrier's unique identifier.
func (c *Carrier) ID() kernel.UUID {
	return c.id
}

// LicensePlate returns the unique plate of the vehicle.
func (c *Carrier) LicensePlate() string {
	return c.licensePlate
}

// Model returns the vehicle model description.
func (c *Carrier) Model() string {
	return c.model
}

// Type returns the cargo capability type.
func (c *Carrier) Type() Type {
	return c.carrierType
}

// RegistrationDate returns when the vehicle was registered.
func (c *Carrier) RegistrationDate() time.Time {
	return c.registrationDate
}

// Status returns the current availability status.
func (c *Carrier) Status() Status {
	return c.status
}

// Rate returns the EUR price per kilometre.
func (c *Carrier) Rate() float64 {
	return c.rate
}

func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Carrier) setLicensePlate(plate string) error {
	if plate == "" {
		return ErrLicensePlateIsRequired
	}
	c.licensePlate = plate
	return nil
}

func (c *Carrier) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}
	c.model = model
	return nil
}

func (c *Carrier) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.carrierType = t
	return nil
}

func (c *Carrier) setRegistrationDate(d time.Time) error {
	if d.IsZero() {
		return ErrRegistrationDateIsRequired
	}
	c.registrationDate = d
	return nil
}

func (c *Carrier) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.status = s
	return nil
}

func (c *Carrier) setRate(rate float64) error {
	if rate <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("rate",
			fmt.Errorf("%v is not greater than 0", rate))
	}
	c.rate = rate
	return nil
}

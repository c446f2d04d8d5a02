package commands

import (
	"errors"
	"time"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/guard"
)

var ErrUpdateRouteCommandIsNotConstructed = errors.New(
	"UpdateRouteCommand must be created via NewUpdateRouteCommand constructor",
)

// UpdateRouteCommand represents a partial edit of a route's basic info.
// Nil fields keep their stored value. A price change is applied only when
// the currency comes with it; a bare price is silently ignored, matching
// the behavior clients already rely on.
type UpdateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID             kernel.UUID
	departureDate       *time.Time
	completionDate      *time.Time
	requiredCarrierType *carrier.Type
	price               *float64
	currency            *kernel.CurrencyCode

	guard guard.ConstructorGuard
}

// NewUpdateRouteCommand creates a command to patch an existing route.
func NewUpdateRouteCommand(
	routeID kernel.UUID,
	departureDate *time.Time,
	completionDate *time.Time,
	requiredCarrierType *carrier.Type,
	price *float64,
	currency *kernel.CurrencyCode,
) (UpdateRouteCommand, error) {
	cmd := UpdateRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRouteID(routeID); err != nil {
		return UpdateRouteCommand{}, err
	}

	if price != nil && *price <= 0 {
		return UpdateRouteCommand{}, ErrPriceIsInvalid
	}
	if requiredCarrierType != nil {
		if err := requiredCarrierType.Validate(); err != nil {
			return UpdateRouteCommand{}, err
		}
	}
	if currency != nil {
		if err := currency.Validate(); err != nil {
			return UpdateRouteCommand{}, err
		}
	}

	cmd.departureDate = departureDate
	cmd.completionDate = completionDate
	cmd.requiredCarrierType = requiredCarrierType
	cmd.price = price
	cmd.currency = currency

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRouteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to update.
func (c UpdateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// DepartureDate returns the new planned departure, or nil to keep the stored one.
func (c UpdateRouteCommand) DepartureDate() *time.Time {
	return c.departureDate
}

// CompletionDate returns the new planned completion, or nil to keep the stored one.
func (c UpdateRouteCommand) CompletionDate() *time.Time {
	return c.completionDate
}

// RequiredCarrierType returns the new vehicle type requirement, or nil to keep the stored one.
func (c UpdateRouteCommand) RequiredCarrierType() *carrier.Type {
	return c.requiredCarrierType
}

// Price returns the new price in the source currency, or nil to keep the stored one.
func (c UpdateRouteCommand) Price() *float64 {
	return c.price
}

// Currency returns the currency the new price is quoted in.
func (c UpdateRouteCommand) Currency() *kernel.CurrencyCode {
	return c.currency
}

func (c *UpdateRouteCommand) setRouteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.routeID = id
	return nil
}

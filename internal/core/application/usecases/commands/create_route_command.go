package commands

import (
	"errors"
	"time"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/route"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var (
	ErrCreateRouteCommandIsNotConstructed = errors.New(
		"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
	)
	ErrPriceIsInvalid         = errs.NewValueIsInvalidError("price must be greater than 0")
	ErrDepartureDateRequired  = errs.NewValueIsRequiredError("departureDate")
	ErrCompletionDateRequired = errs.NewValueIsRequiredError("completionDate")
)

// CreateRouteCommand represents a request to open a new transport order.
// Distance is never part of the command: it is estimated from the endpoints
// by the handler. The price carries its source currency for normalization.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	startPoint          kernel.GeoPoint
	endPoint            kernel.GeoPoint
	departureDate       time.Time
	completionDate      time.Time
	requiredCarrierType carrier.Type
	price               float64
	currency            kernel.CurrencyCode

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to open a transport order.
// Validates endpoints, planned date ordering, carrier type, price and currency.
func NewCreateRouteCommand(
	startPoint kernel.GeoPoint,
	endPoint kernel.GeoPoint,
	departureDate time.Time,
	completionDate time.Time,
	requiredCarrierType carrier.Type,
	price float64,
	currency kernel.CurrencyCode,
) (CreateRouteCommand, error) {
	cmd := CreateRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEndpoints(startPoint, endPoint),
		cmd.setPlannedDates(departureDate, completionDate),
		cmd.setRequiredCarrierType(requiredCarrierType),
		cmd.setPrice(price),
		cmd.setCurrency(currency),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// StartPoint returns the origin coordinate.
func (c CreateRouteCommand) StartPoint() kernel.GeoPoint {
	return c.startPoint
}

// EndPoint returns the destination coordinate.
func (c CreateRouteCommand) EndPoint() kernel.GeoPoint {
	return c.endPoint
}

// DepartureDate returns the planned departure.
func (c CreateRouteCommand) DepartureDate() time.Time {
	return c.departureDate
}

// CompletionDate returns the planned completion.
func (c CreateRouteCommand) CompletionDate() time.Time {
	return c.completionDate
}

// RequiredCarrierType returns the vehicle type the route demands.
func (c CreateRouteCommand) RequiredCarrierType() carrier.Type {
	return c.requiredCarrierType
}

// Price returns the price in the source currency.
func (c CreateRouteCommand) Price() float64 {
	return c.price
}

// Currency returns the currency the price is quoted in.
func (c CreateRouteCommand) Currency() kernel.CurrencyCode {
	return c.currency
}

func (c *CreateRouteCommand) setEndpoints(start, end kernel.GeoPoint) error {
	if err := start.Validate(); err != nil {
		return err
	}
	if err := end.Validate(); err != nil {
		return err
	}
	c.startPoint = start
	c.endPoint = end
	return nil
}

func (c *CreateRouteCommand) setPlannedDates(departure, completion time.Time) error {
	if departure.IsZero() {
		return ErrDepartureDateRequired
	}
	if completion.IsZero() {
		return ErrCompletionDateRequired
	}
	if departure.After(completion) {
		return route.ErrDatesOutOfOrder
	}
	c.departureDate = departure
	c.completionDate = completion
	return nil
}

func (c *CreateRouteCommand) setRequiredCarrierType(t carrier.Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.requiredCarrierType = t
	return nil
}

func (c *CreateRouteCommand) setPrice(price float64) error {
	if price <= 0 {
		return ErrPriceIsInvalid
	}
	c.price = price
	return nil
}

func (c *CreateRouteCommand) setCurrency(currency kernel.CurrencyCode) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	c.currency = currency
	return nil
}

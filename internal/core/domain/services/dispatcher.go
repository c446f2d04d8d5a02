// Package services contains domain services that coordinate behavior across
// the route and carrier aggregates.
package services

import (
	"errors"
	"fmt"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/route"
	"transport/internal/pkg/errs"
)

var (
	// ErrCarrierUnavailable is returned when the candidate carrier is not in
	// AVAILABLE status.
	ErrCarrierUnavailable = errors.New("carrier is not available")

	// ErrCarrierTypeMismatch is returned when the candidate carrier's vehicle
	// type does not equal the route's required carrier type.
	ErrCarrierTypeMismatch = errors.New("carrier type is not compatible with this route")
)

// Dispatcher binds an available carrier to an awaiting route.
//
// It performs the compatibility checks of the dispatch operation and then
// executes the paired state change on both aggregates: the route moves to
// IN_PROGRESS with the fee computed from the carrier's rate, and the carrier
// is marked BUSY. Persisting the pair atomically is the caller's concern.
type Dispatcher struct{}

// NewDispatcher creates a Dispatcher.
func NewDispatcher() Dispatcher {
	return Dispatcher{}
}

// Dispatch validates that the candidate carrier can serve the route and
// applies the paired transition.
//
// Failure modes, in check order:
//   - route already has a bound carrier
//   - carrier is not AVAILABLE (ErrCarrierUnavailable)
//   - carrier type differs from the route's requirement (ErrCarrierTypeMismatch)
func (d Dispatcher) Dispatch(r *route.Route, c *carrier.Carrier) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if r.CarrierID() != nil {
		return route.ErrCarrierAlreadyAssigned
	}
	if !c.IsAvailable() {
		return ErrCarrierUnavailable
	}
	if c.Type() != r.RequiredCarrierType() {
		return fmt.Errorf("%w: route requires %s, carrier is %s",
			ErrCarrierTypeMismatch, r.RequiredCarrierType(), c.Type())
	}

	if err := c.MarkBusy(); err != nil {
		return err
	}
	if err := r.AssignCarrier(c.ID(), c.Rate()); err != nil {
		return err
	}

	return nil
}

// Release undoes the BUSY hold when the route the carrier serves completes.
// The route must already be COMPLETED.
func (d Dispatcher) Release(r *route.Route, c *carrier.Carrier) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if r.Status() != route.StatusCompleted {
		return errs.NewInvalidTransitionErrorWithCause("carrier release",
			fmt.Errorf("route status is %s", r.Status()))
	}

	return c.Release()
}

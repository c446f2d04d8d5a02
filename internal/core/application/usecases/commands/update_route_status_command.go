package commands

import (
	"errors"
	"time"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/route"
	"transport/internal/pkg/guard"
)

var ErrUpdateRouteStatusCommandIsNotConstructed = errors.New(
	"UpdateRouteStatusCommand must be created via NewUpdateRouteStatusCommand constructor",
)

// UpdateRouteStatusCommand represents a lifecycle update request: the target
// status plus optionally the actual departure and completion timestamps.
type UpdateRouteStatusCommand struct { //nolint:recvcheck //using for validation
	routeID              kernel.UUID
	target               route.Status
	departureDateActual  *time.Time
	completionDateActual *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateRouteStatusCommand creates a command to advance a route's
// lifecycle. The target must be a known status; whether the transition is
// legal is decided by the aggregate against its stored state.
func NewUpdateRouteStatusCommand(
	routeID kernel.UUID,
	target route.Status,
	departureDateActual *time.Time,
	completionDateActual *time.Time,
) (UpdateRouteStatusCommand, error) {
	cmd := UpdateRouteStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateRouteStatusCommand{}, err
	}

	cmd.departureDateActual = departureDateActual
	cmd.completionDateActual = completionDateActual

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRouteStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRouteStatusCommandIsNotConstructed)
}

// RouteID returns the route to update.
func (c UpdateRouteStatusCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Target returns the requested lifecycle status.
func (c UpdateRouteStatusCommand) Target() route.Status {
	return c.target
}

// DepartureDateActual returns the supplied actual departure, or nil.
func (c UpdateRouteStatusCommand) DepartureDateActual() *time.Time {
	return c.departureDateActual
}

// CompletionDateActual returns the supplied actual completion, or nil.
func (c UpdateRouteStatusCommand) CompletionDateActual() *time.Time {
	return c.completionDateActual
}

func (c *UpdateRouteStatusCommand) setRouteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.routeID = id
	return nil
}

func (c *UpdateRouteStatusCommand) setTarget(target route.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

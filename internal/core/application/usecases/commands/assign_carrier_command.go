package commands

import (
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/guard"
)

var ErrAssignCarrierCommandIsNotConstructed = errors.New(
	"AssignCarrierCommand must be created via NewAssignCarrierCommand constructor",
)

// AssignCarrierCommand represents a request to dispatch a specific carrier
// onto a specific route.
type AssignCarrierCommand struct { //nolint:recvcheck //using for validation
	routeID   kernel.UUID
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCarrierCommand creates a command to dispatch a carrier onto a route.
func NewAssignCarrierCommand(routeID, carrierID kernel.UUID) (AssignCarrierCommand, error) {
	cmd := AssignCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setCarrierID(carrierID),
	); err != nil {
		return AssignCarrierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCarrierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCarrierCommandIsNotConstructed)
}

// RouteID returns the route to dispatch.
func (c AssignCarrierCommand) RouteID() kernel.UUID {
	return c.routeID
}

// CarrierID returns the candidate carrier.
func (c AssignCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c *AssignCarrierCommand) setRouteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.routeID = id
	return nil
}

func (c *AssignCarrierCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.carrierID = id
	return nil
}

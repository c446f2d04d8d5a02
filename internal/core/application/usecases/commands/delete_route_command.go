package commands

import (
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/guard"
)

var ErrDeleteRouteCommandIsNotConstructed = errors.New(
	"DeleteRouteCommand must be created via NewDeleteRouteCommand constructor",
)

// DeleteRouteCommand represents a request to remove a route record.
type DeleteRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRouteCommand creates a command to delete a route by ID.
func NewDeleteRouteCommand(routeID kernel.UUID) (DeleteRouteCommand, error) {
	cmd := DeleteRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRouteID(routeID); err != nil {
		return DeleteRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRouteCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to delete.
func (c DeleteRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c *DeleteRouteCommand) setRouteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.routeID = id
	return nil
}

package commands

import (
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/guard"
)

var ErrDeleteCarrierCommandIsNotConstructed = errors.New(
	"DeleteCarrierCommand must be created via NewDeleteCarrierCommand constructor",
)

// DeleteCarrierCommand represents a request to remove a carrier record.
type DeleteCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCarrierCommand creates a command to delete a carrier by ID.
func NewDeleteCarrierCommand(carrierID kernel.UUID) (DeleteCarrierCommand, error) {
	cmd := DeleteCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCarrierID(carrierID); err != nil {
		return DeleteCarrierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCarrierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCarrierCommandIsNotConstructed)
}

// CarrierID returns the identifier of the carrier to delete.
func (c DeleteCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c *DeleteCarrierCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.carrierID = id
	return nil
}

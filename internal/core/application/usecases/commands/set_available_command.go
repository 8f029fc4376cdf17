package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrSetAvailableCommandIsNotConstructed = errors.New(
	"SetAvailableCommand must be created via NewSetAvailableCommand constructor",
)

// SetAvailableCommand represents a driver's request to come online and start
// accepting deliveries.
type SetAvailableCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetAvailableCommand creates a command to mark a driver available.
func NewSetAvailableCommand(driverID kernel.UUID) (SetAvailableCommand, error) {
	command := SetAvailableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(driverID); err != nil {
		return SetAvailableCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAvailableCommand) Validate() error {
	return c.guard.Validate(ErrSetAvailableCommandIsNotConstructed)
}

// DriverID returns the driver ID from the command.
func (c SetAvailableCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *SetAvailableCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

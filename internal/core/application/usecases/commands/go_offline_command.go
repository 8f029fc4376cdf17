package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGoOfflineCommandIsNotConstructed = errors.New(
	"GoOfflineCommand must be created via NewGoOfflineCommand constructor",
)

// GoOfflineCommand represents a driver's request to stop accepting deliveries.
// Going offline always succeeds, even mid-delivery: a driver losing
// connectivity or ending a shift must never be stuck in a working status.
type GoOfflineCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGoOfflineCommand creates a command to take a driver offline.
func NewGoOfflineCommand(driverID kernel.UUID) (GoOfflineCommand, error) {
	command := GoOfflineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(driverID); err != nil {
		return GoOfflineCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c GoOfflineCommand) Validate() error {
	return c.guard.Validate(ErrGoOfflineCommandIsNotConstructed)
}

// DriverID returns the driver ID from the command.
func (c GoOfflineCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *GoOfflineCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

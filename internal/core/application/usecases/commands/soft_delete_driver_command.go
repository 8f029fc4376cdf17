package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrSoftDeleteDriverCommandIsNotConstructed = errors.New(
	"SoftDeleteDriverCommand must be created via NewSoftDeleteDriverCommand constructor",
)

// SoftDeleteDriverCommand represents a request to deactivate a driver
// account. The record is retained for statistics and audit; the driver
// simply disappears from reads and dispatch.
type SoftDeleteDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSoftDeleteDriverCommand creates a command to soft delete a driver.
func NewSoftDeleteDriverCommand(driverID kernel.UUID) (SoftDeleteDriverCommand, error) {
	command := SoftDeleteDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(driverID); err != nil {
		return SoftDeleteDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SoftDeleteDriverCommand) Validate() error {
	return c.guard.Validate(ErrSoftDeleteDriverCommandIsNotConstructed)
}

// DriverID returns the driver ID from the command.
func (c SoftDeleteDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *SoftDeleteDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

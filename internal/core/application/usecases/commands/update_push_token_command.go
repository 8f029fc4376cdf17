package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdatePushTokenCommandIsNotConstructed = errors.New(
	"UpdatePushTokenCommand must be created via NewUpdatePushTokenCommand constructor",
)

// UpdatePushTokenCommand represents a device registering or clearing the
// push notification token for a driver. An empty token clears the
// registration, which is what a device does on logout.
type UpdatePushTokenCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	token    string

	guard guard.ConstructorGuard
}

// NewUpdatePushTokenCommand creates a command to update a driver's push token.
func NewUpdatePushTokenCommand(driverID kernel.UUID, token string) (UpdatePushTokenCommand, error) {
	command := UpdatePushTokenCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(driverID); err != nil {
		return UpdatePushTokenCommand{}, err
	}

	command.token = token

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePushTokenCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePushTokenCommandIsNotConstructed)
}

// DriverID returns the driver ID from the command.
func (c UpdatePushTokenCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Token returns the push token from the command. Empty means clear.
func (c UpdatePushTokenCommand) Token() string {
	return c.token
}

func (c *UpdatePushTokenCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

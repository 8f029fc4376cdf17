package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrSetVerificationCommandIsNotConstructed = errors.New(
	"SetVerificationCommand must be created via NewSetVerificationCommand constructor",
)

// SetVerificationCommand represents a back-office decision on a driver's
// verification flags. Documents verification gates dispatch eligibility:
// an available driver without it is never offered deliveries.
type SetVerificationCommand struct { //nolint:recvcheck //using for validation
	driverID          kernel.UUID
	emailVerified     bool
	phoneVerified     bool
	documentsVerified bool

	guard guard.ConstructorGuard
}

// NewSetVerificationCommand creates a command to set a driver's verification flags.
func NewSetVerificationCommand(driverID kernel.UUID, emailVerified, phoneVerified, documentsVerified bool) (SetVerificationCommand, error) {
	command := SetVerificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(driverID); err != nil {
		return SetVerificationCommand{}, err
	}

	command.emailVerified = emailVerified
	command.phoneVerified = phoneVerified
	command.documentsVerified = documentsVerified

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetVerificationCommand) Validate() error {
	return c.guard.Validate(ErrSetVerificationCommandIsNotConstructed)
}

// DriverID returns the driver ID from the command.
func (c SetVerificationCommand) DriverID() kernel.UUID {
	return c.driverID
}

// EmailVerified returns the email verification flag from the command.
func (c SetVerificationCommand) EmailVerified() bool {
	return c.emailVerified
}

// PhoneVerified returns the phone verification flag from the command.
func (c SetVerificationCommand) PhoneVerified() bool {
	return c.phoneVerified
}

// DocumentsVerified returns the documents verification flag from the command.
func (c SetVerificationCommand) DocumentsVerified() bool {
	return c.documentsVerified
}

func (c *SetVerificationCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

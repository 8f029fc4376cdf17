package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/pkg/guard"
)

var ErrResetPeriodCountersCommandIsNotConstructed = errors.New(
	"ResetPeriodCountersCommand must be created via NewResetPeriodCountersCommand constructor",
)

// ResetPeriodCountersCommand represents a period rollover: zeroing the
// daily, weekly, or monthly delivery counters and earnings for the whole
// fleet. Counters never roll over on their own; the scheduler issues this
// command at each period boundary.
type ResetPeriodCountersCommand struct { //nolint:recvcheck //using for validation
	kind driver.PeriodKind

	guard guard.ConstructorGuard
}

// NewResetPeriodCountersCommand creates a command to reset a period's counters.
func NewResetPeriodCountersCommand(kind driver.PeriodKind) (ResetPeriodCountersCommand, error) {
	command := ResetPeriodCountersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setKind(kind); err != nil {
		return ResetPeriodCountersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetPeriodCountersCommand) Validate() error {
	return c.guard.Validate(ErrResetPeriodCountersCommandIsNotConstructed)
}

// Kind returns the period kind from the command.
func (c ResetPeriodCountersCommand) Kind() driver.PeriodKind {
	return c.kind
}

func (c *ResetPeriodCountersCommand) setKind(kind driver.PeriodKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

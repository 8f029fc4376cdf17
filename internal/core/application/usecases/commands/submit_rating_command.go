package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrSubmitRatingCommandIsNotConstructed = errors.New(
	"SubmitRatingCommand must be created via NewSubmitRatingCommand constructor",
)

// SubmitRatingCommand represents a customer rating a completed delivery.
type SubmitRatingCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	orderID  kernel.UUID
	value    int
	comment  string

	guard guard.ConstructorGuard
}

// NewSubmitRatingCommand creates a command to record a delivery rating.
// The value must be an integer between 1 and 5; the comment is optional.
func NewSubmitRatingCommand(driverID, orderID kernel.UUID, value int, comment string) (SubmitRatingCommand, error) {
	command := SubmitRatingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setOrderID(orderID),
		command.setValue(value),
	); err != nil {
		return SubmitRatingCommand{}, err
	}

	command.comment = comment

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRatingCommandIsNotConstructed)
}

// DriverID returns the driver ID from the command.
func (c SubmitRatingCommand) DriverID() kernel.UUID {
	return c.driverID
}

// OrderID returns the rated order's ID from the command.
func (c SubmitRatingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Value returns the rating value from the command.
func (c SubmitRatingCommand) Value() int {
	return c.value
}

// Comment returns the optional free-text comment from the command.
func (c SubmitRatingCommand) Comment() string {
	return c.comment
}

func (c *SubmitRatingCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *SubmitRatingCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *SubmitRatingCommand) setValue(value int) error {
	if value < driver.RatingMin || value > driver.RatingMax {
		return errs.NewValueIsOutOfRangeError("value", value, driver.RatingMin, driver.RatingMax)
	}

	c.value = value
	return nil
}

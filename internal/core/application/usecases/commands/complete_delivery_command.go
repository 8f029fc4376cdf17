package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a driver finishing their active delivery.
// The order ID is optional: when present it must match the driver's active
// delivery, which protects against completing a stale assignment after a
// concurrent re-dispatch.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	driverID            kernel.UUID
	orderID             *kernel.UUID
	deliveryTimeMinutes float64
	earnings            float64

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
// Delivery time must be positive; earnings must be non-negative.
func NewCompleteDeliveryCommand(
	driverID kernel.UUID,
	orderID *kernel.UUID,
	deliveryTimeMinutes, earnings float64,
) (CompleteDeliveryCommand, error) {
	command := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setOrderID(orderID),
		command.setDeliveryTimeMinutes(deliveryTimeMinutes),
		command.setEarnings(earnings),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DriverID returns the driver ID from the command.
func (c CompleteDeliveryCommand) DriverID() kernel.UUID {
	return c.driverID
}

// OrderID returns the order ID from the command, or nil when the caller
// did not name the order being completed.
func (c CompleteDeliveryCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// DeliveryTimeMinutes returns the delivery duration from the command.
func (c CompleteDeliveryCommand) DeliveryTimeMinutes() float64 {
	return c.deliveryTimeMinutes
}

// Earnings returns the delivery earnings from the command.
func (c CompleteDeliveryCommand) Earnings() float64 {
	return c.earnings
}

func (c *CompleteDeliveryCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *CompleteDeliveryCommand) setOrderID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CompleteDeliveryCommand) setDeliveryTimeMinutes(minutes float64) error {
	if minutes <= 0 {
		return errs.NewValueIsInvalidError("deliveryTimeMinutes")
	}

	c.deliveryTimeMinutes = minutes
	return nil
}

func (c *CompleteDeliveryCommand) setEarnings(earnings float64) error {
	if earnings < 0 {
		return errs.NewValueIsInvalidError("earnings")
	}

	c.earnings = earnings
	return nil
}

package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// DefaultDispatchRadiusKm bounds proximity dispatch when the caller gives a
// pickup point without an explicit radius.
const DefaultDispatchRadiusKm = 10.0

// AssignDeliveryCommand represents a request to match a delivery with a
// driver. The pickup location is optional: when present, candidates are
// restricted to a bounding box around it and ranked by rating; when absent,
// all available drivers compete, ranked by lifetime delivery count so work
// flows toward the least busy.
//
// Example:
//
//	pickup, _ := kernel.NewLocation(25.2048, 55.2708)
//	cmd, err := NewAssignDeliveryCommand(orderID, &pickup, 5)
//	if err != nil {
//	    return fmt.Errorf("invalid dispatch request: %w", err)
//	}
//
//	driverID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoDriverAvailable) {
//	    // queue the order for a later dispatch round
//	}
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	pickup   *kernel.Location
	radiusKm float64

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a command to dispatch a delivery.
// When pickup is set, radiusKm must be positive; zero selects
// DefaultDispatchRadiusKm. When pickup is nil, radiusKm is ignored.
func NewAssignDeliveryCommand(orderID kernel.UUID, pickup *kernel.Location, radiusKm float64) (AssignDeliveryCommand, error) {
	command := AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setPickup(pickup, radiusKm),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Pickup returns the pickup location from the command, or nil when the
// dispatch is not proximity bounded.
func (c AssignDeliveryCommand) Pickup() *kernel.Location {
	return c.pickup
}

// RadiusKm returns the dispatch radius in kilometers. Zero when no pickup
// location was given.
func (c AssignDeliveryCommand) RadiusKm() float64 {
	return c.radiusKm
}

func (c *AssignDeliveryCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AssignDeliveryCommand) setPickup(pickup *kernel.Location, radiusKm float64) error {
	if pickup == nil {
		return nil
	}

	if err := pickup.Validate(); err != nil {
		return err
	}
	if radiusKm < 0 {
		return errs.NewValueIsInvalidError("radiusKm")
	}
	if radiusKm == 0 {
		radiusKm = DefaultDispatchRadiusKm
	}

	c.pickup = pickup
	c.radiusKm = radiusKm
	return nil
}

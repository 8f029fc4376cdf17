package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateLocationCommandIsNotConstructed = errors.New(
	"UpdateLocationCommand must be created via NewUpdateLocationCommand constructor",
)

const (
	updateLocationHeadingMin = 0.0
	updateLocationHeadingMax = 360.0
)

// UpdateLocationCommand represents a GPS report from a driver's device.
// Carries validated coordinates plus the optional accuracy, heading, and
// speed readings a device may or may not provide.
//
// Example:
//
//	location, _ := kernel.NewLocation(25.2048, 55.2708)
//	heading := 270.0
//	cmd, err := NewUpdateLocationCommand(driverID, location, nil, &heading, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid location report: %w", err)
//	}
type UpdateLocationCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	location kernel.Location
	accuracy *float64
	heading  *float64
	speed    *float64

	guard guard.ConstructorGuard
}

// NewUpdateLocationCommand creates a command carrying a driver's location report.
// Accuracy and speed must be non-negative when present; heading must lie in
// [0, 360) degrees.
func NewUpdateLocationCommand(
	driverID kernel.UUID,
	location kernel.Location,
	accuracy, heading, speed *float64,
) (UpdateLocationCommand, error) {
	command := UpdateLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setLocation(location),
		command.setAccuracy(accuracy),
		command.setHeading(heading),
		command.setSpeed(speed),
	); err != nil {
		return UpdateLocationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationCommandIsNotConstructed)
}

// DriverID returns the driver ID from the command.
func (c UpdateLocationCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Location returns the reported coordinates from the command.
func (c UpdateLocationCommand) Location() kernel.Location {
	return c.location
}

// Accuracy returns the reported accuracy in meters, or nil.
func (c UpdateLocationCommand) Accuracy() *float64 {
	return c.accuracy
}

// Heading returns the reported heading in degrees, or nil.
func (c UpdateLocationCommand) Heading() *float64 {
	return c.heading
}

// Speed returns the reported speed, or nil.
func (c UpdateLocationCommand) Speed() *float64 {
	return c.speed
}

func (c *UpdateLocationCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *UpdateLocationCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *UpdateLocationCommand) setAccuracy(accuracy *float64) error {
	if accuracy != nil && *accuracy < 0 {
		return errs.NewValueIsInvalidError("accuracy")
	}

	c.accuracy = accuracy
	return nil
}

func (c *UpdateLocationCommand) setHeading(heading *float64) error {
	if heading != nil && (*heading < updateLocationHeadingMin || *heading >= updateLocationHeadingMax) {
		return errs.NewValueIsOutOfRangeError("heading", *heading, updateLocationHeadingMin, updateLocationHeadingMax)
	}

	c.heading = heading
	return nil
}

func (c *UpdateLocationCommand) setSpeed(speed *float64) error {
	if speed != nil && *speed < 0 {
		return errs.NewValueIsInvalidError("speed")
	}

	c.speed = speed
	return nil
}

package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrRegisterDriverCommandIsNotConstructed = errors.New(
		"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
	)
	ErrAuthIDIsRequired = errors.New("auth id is required")
	ErrNameIsRequired   = errors.New("name is required")
	ErrEmailIsRequired  = errors.New("email is required")
	ErrPhoneIsRequired  = errors.New("phone is required")
)

// RegisterDriverCommand represents a request to register a new driver in the
// dispatch system. Encapsulates the driver's identity data and vehicle.
// A fresh driver ID is generated at construction; registration starts the
// driver in the offline status with no statistics.
//
// Example:
//
//	vehicle, _ := driver.NewVehicle(driver.VehicleTypeBike, "D-1234", "Honda", "red")
//	cmd, err := NewRegisterDriverCommand("auth-42", "John Doe", "john@example.com", "+971501234567", vehicle)
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//
//	handler := NewRegisterDriverCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register driver: %w", err)
//	}
//	fmt.Printf("Registered driver with ID: %s", cmd.DriverID())
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	authID   string
	name     string
	email    string
	phone    string
	vehicle  driver.Vehicle

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a new driver.
// Automatically generates a unique ID for the driver.
// Validates that identity fields are not empty and the vehicle is valid.
func NewRegisterDriverCommand(authID, name, email, phone string, vehicle driver.Vehicle) (RegisterDriverCommand, error) {
	command := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(kernel.NewUUID()),
		command.setAuthID(authID),
		command.setName(name),
		command.setEmail(email),
		command.setPhone(phone),
		command.setVehicle(vehicle),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterDriverCommandIsNotConstructed if validation fails.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the generated driver ID from the command.
func (c RegisterDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// AuthID returns the external auth identity from the command.
func (c RegisterDriverCommand) AuthID() string {
	return c.authID
}

// Name returns the driver name from the command.
func (c RegisterDriverCommand) Name() string {
	return c.name
}

// Email returns the driver email from the command.
func (c RegisterDriverCommand) Email() string {
	return c.email
}

// Phone returns the driver phone from the command.
func (c RegisterDriverCommand) Phone() string {
	return c.phone
}

// Vehicle returns the driver vehicle from the command.
func (c RegisterDriverCommand) Vehicle() driver.Vehicle {
	return c.vehicle
}

func (c *RegisterDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *RegisterDriverCommand) setAuthID(authID string) error {
	if authID == "" {
		return ErrAuthIDIsRequired
	}

	c.authID = authID
	return nil
}

func (c *RegisterDriverCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterDriverCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterDriverCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *RegisterDriverCommand) setVehicle(vehicle driver.Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}

	c.vehicle = vehicle
	return nil
}

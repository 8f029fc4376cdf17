package commands

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
)

// RegisterDriverCommandHandler handles the business logic for driver registration.
// Creates and persists new driver entities in the offline status with zeroed
// statistics and no verification flags set.
//
// Example:
//
//	handler := NewRegisterDriverCommandHandler(uowFactory)
//	vehicle, _ := driver.NewVehicle(driver.VehicleTypeCar, "A-777", "Toyota", "white")
//	cmd, _ := NewRegisterDriverCommand("auth-42", "Express Driver", "x@example.com", "+15550001122", vehicle)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("driver registration failed: %w", err)
//	}
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRegisterDriverCommandHandler creates a handler for driver registration.
// Requires a DriverUoWFactory for transactional persistence operations.
func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command.
// Creates a new driver entity and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	driverEntity, err := driver.NewDriver(cmd.DriverID(), cmd.AuthID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Vehicle())
	if err != nil {
		return err
	}

	if err = driverRepo.Add(ctx, driverEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

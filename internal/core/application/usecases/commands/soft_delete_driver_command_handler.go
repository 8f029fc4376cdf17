package commands

import (
	"context"
	"time"
)

// SoftDeleteDriverCommandHandler deactivates a driver account.
// Deletion forces the driver offline and clears their active delivery and
// push token; repeating the command on an already deleted driver is a no-op.
type SoftDeleteDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewSoftDeleteDriverCommandHandler creates a handler for driver deactivation.
func NewSoftDeleteDriverCommandHandler(uowFactory DriverUoWFactory) SoftDeleteDriverCommandHandler {
	return SoftDeleteDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the soft delete command.
// Uses GetForUpdate rather than Get so the deletion serializes with any
// in-flight status transition on the same driver.
func (h SoftDeleteDriverCommandHandler) Handle(ctx context.Context, cmd SoftDeleteDriverCommand) error {
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
	driverEntity, err := driverRepo.GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = driverEntity.MarkDeleted(time.Now()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, driverEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

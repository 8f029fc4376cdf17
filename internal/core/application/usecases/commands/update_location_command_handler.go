package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/driver"
)

// UpdateLocationCommandHandler persists a driver's latest location fix.
// The fix overwrites the previous one; history is not kept. The fix
// timestamp is the server receipt time, not a device clock, so freshness
// checks are immune to skewed client clocks.
type UpdateLocationCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateLocationCommandHandler creates a handler for location reports.
func NewUpdateLocationCommandHandler(uowFactory DriverUoWFactory) UpdateLocationCommandHandler {
	return UpdateLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location report.
// Location updates are accepted in any driver status, including offline,
// since the last report before going offline is still useful to operations.
func (h UpdateLocationCommandHandler) Handle(ctx context.Context, cmd UpdateLocationCommand) error {
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

	fix, err := driver.NewLocationFix(cmd.Location(), cmd.Accuracy(), cmd.Heading(), cmd.Speed(), time.Now())
	if err != nil {
		return err
	}

	if err = driverEntity.UpdateLocation(fix); err != nil {
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

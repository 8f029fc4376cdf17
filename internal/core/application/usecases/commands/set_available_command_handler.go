package commands

import (
	"context"
	"log/slog"
	"time"
)

// SetAvailableCommandHandler transitions a driver to the available status.
//
// Going available without a recent location fix is allowed, so a driver can
// come online before the first GPS reading arrives. The handler logs a
// warning in that case because such a driver is a poor proximity-dispatch
// candidate until a fix is reported.
type SetAvailableCommandHandler struct {
	uowFactory DriverUoWFactory
	logger     *slog.Logger
}

// NewSetAvailableCommandHandler creates a handler for availability transitions.
func NewSetAvailableCommandHandler(uowFactory DriverUoWFactory, logger *slog.Logger) SetAvailableCommandHandler {
	return SetAvailableCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the set available command.
// Loads the driver under a row lock, applies the status transition, and
// persists the result. Setting an already available driver available again
// is a harmless no-op; transitioning from on_delivery is a conflict.
func (h SetAvailableCommandHandler) Handle(ctx context.Context, cmd SetAvailableCommand) error {
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

	if err = driverEntity.SetAvailable(); err != nil {
		return err
	}

	fix := driverEntity.LocationFix()
	if fix == nil || !fix.IsFresh(time.Now()) {
		h.logger.WarnContext(ctx, "driver went available without a fresh location fix",
			slog.String("driver_id", cmd.DriverID().String()))
	}

	if err = driverRepo.Update(ctx, driverEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

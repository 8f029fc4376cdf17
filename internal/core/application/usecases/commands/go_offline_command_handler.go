package commands

import (
	"context"
	"log/slog"
)

// GoOfflineCommandHandler transitions a driver to the offline status.
// An active delivery is abandoned in the process; the handler logs it so
// operations can requeue the affected order.
type GoOfflineCommandHandler struct {
	uowFactory DriverUoWFactory
	logger     *slog.Logger
}

// NewGoOfflineCommandHandler creates a handler for offline transitions.
func NewGoOfflineCommandHandler(uowFactory DriverUoWFactory, logger *slog.Logger) GoOfflineCommandHandler {
	return GoOfflineCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the go offline command.
// The transition is unconditional: it clears any active delivery and the
// push token, so a driver who returns online starts from a clean slate.
func (h GoOfflineCommandHandler) Handle(ctx context.Context, cmd GoOfflineCommand) error {
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

	abandoned := driverEntity.ActiveDeliveryID()

	if err = driverEntity.GoOffline(); err != nil {
		return err
	}

	if abandoned != nil {
		h.logger.WarnContext(ctx, "driver went offline mid delivery",
			slog.String("driver_id", cmd.DriverID().String()),
			slog.String("order_id", abandoned.String()))
	}

	if err = driverRepo.Update(ctx, driverEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

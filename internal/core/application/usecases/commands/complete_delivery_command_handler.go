package commands

import (
	"context"
	"time"
)

// CompleteDeliveryCommandHandler finishes a driver's active delivery.
// Statistics recording and the status transition back to available commit
// together or not at all: a rejected completion leaves both untouched.
type CompleteDeliveryCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(uowFactory DriverUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// Loads the driver under a row lock and applies the completion: delivery
// counters and earnings are recorded, the running delivery time average is
// updated, and the driver returns to the available status.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	if err = driverEntity.CompleteDelivery(cmd.OrderID(), cmd.DeliveryTimeMinutes(), cmd.Earnings(), time.Now()); err != nil {
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

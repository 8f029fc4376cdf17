package commands

import (
	"context"
)

// UpdatePushTokenCommandHandler stores the push notification token a
// driver's device registered.
type UpdatePushTokenCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdatePushTokenCommandHandler creates a handler for push token updates.
func NewUpdatePushTokenCommandHandler(uowFactory DriverUoWFactory) UpdatePushTokenCommandHandler {
	return UpdatePushTokenCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the push token update.
func (h UpdatePushTokenCommandHandler) Handle(ctx context.Context, cmd UpdatePushTokenCommand) error {
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

	if err = driverEntity.SetPushToken(cmd.Token()); err != nil {
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

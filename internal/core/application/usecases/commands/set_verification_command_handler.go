package commands

import (
	"context"
)

// SetVerificationCommandHandler applies a back-office verification decision
// to a driver. Revoking documents verification does not interrupt an active
// delivery; the driver simply stops receiving new ones.
type SetVerificationCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewSetVerificationCommandHandler creates a handler for verification updates.
func NewSetVerificationCommandHandler(uowFactory DriverUoWFactory) SetVerificationCommandHandler {
	return SetVerificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification update.
func (h SetVerificationCommandHandler) Handle(ctx context.Context, cmd SetVerificationCommand) error {
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

	if err = driverEntity.SetVerificationFlags(cmd.EmailVerified(), cmd.PhoneVerified(), cmd.DocumentsVerified()); err != nil {
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

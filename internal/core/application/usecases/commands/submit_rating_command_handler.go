package commands

import (
	"context"
	"time"
)

// SubmitRatingCommandHandler records a customer rating against a driver.
// The rating is appended to the driver's history and folded into the
// running average in one step.
type SubmitRatingCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewSubmitRatingCommandHandler creates a handler for rating submission.
func NewSubmitRatingCommandHandler(uowFactory DriverUoWFactory) SubmitRatingCommandHandler {
	return SubmitRatingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating submission.
// Ratings are accepted regardless of the driver's current status; a rating
// typically arrives well after the delivery completed.
func (h SubmitRatingCommandHandler) Handle(ctx context.Context, cmd SubmitRatingCommand) error {
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

	if err = driverEntity.AddRating(cmd.OrderID(), cmd.Value(), cmd.Comment(), time.Now()); err != nil {
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

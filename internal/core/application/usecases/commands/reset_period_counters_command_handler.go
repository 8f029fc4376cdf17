package commands

import (
	"context"
)

// ResetPeriodCountersCommandHandler performs a fleet-wide period rollover.
// The reset runs as a single bulk statement in the repository rather than
// loading every driver aggregate; rolling over a fleet must not take a lock
// per driver.
type ResetPeriodCountersCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewResetPeriodCountersCommandHandler creates a handler for period rollovers.
func NewResetPeriodCountersCommandHandler(uowFactory DriverUoWFactory) ResetPeriodCountersCommandHandler {
	return ResetPeriodCountersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rollover command.
// Resetting one period kind never touches the others, nor the lifetime
// totals and averages.
func (h ResetPeriodCountersCommandHandler) Handle(ctx context.Context, cmd ResetPeriodCountersCommand) error {
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

	if err := uow.DriverRepository().ResetPeriodCounters(ctx, cmd.Kind()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

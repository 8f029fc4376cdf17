package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// AssignDeliveryCommandHandler orchestrates delivery dispatch.
// Fetches ranked candidates, lets the DriverDispatcher claim the best one,
// and persists the claimed driver's transition to on_delivery, all within
// a single transaction.
//
// Two dispatches racing for the same drivers cannot double book: candidate
// rows are locked by the repository for the duration of the transaction and
// rows held by a concurrent dispatch are skipped, so each claimed driver
// belongs to exactly one order.
//
// Example:
//
//	handler := NewAssignDeliveryCommandHandler(uowFactory, notifier, logger)
//	cmd, _ := NewAssignDeliveryCommand(orderID, nil, 0)
//	driverID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoDriverAvailable):
//	    log.Println("No eligible drivers right now")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	default:
//	    log.Printf("Assigned to driver %s", driverID)
//	}
type AssignDeliveryCommandHandler struct {
	uowFactory DriverUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAssignDeliveryCommandHandler creates a handler for delivery dispatch.
// Requires a DriverUoWFactory for transactional persistence and a Notifier
// for the post-commit driver push.
func NewAssignDeliveryCommandHandler(
	uowFactory DriverUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the dispatch command and returns the claimed driver's ID.
// Returns services.ErrNoDriverAvailable when no eligible candidate exists;
// the caller decides whether to retry or queue.
//
// The assignment push notification is sent after the transaction commits.
// A failed push is logged and swallowed: the assignment already happened
// and must not be rolled back by a notification problem.
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	candidates, err := driverRepo.GetAvailableForDispatch(ctx, cmd.Pickup(), cmd.RadiusKm())
	if err != nil {
		return kernel.UUID{}, err
	}

	claimed, err := services.NewDriverDispatcher().Dispatch(cmd.OrderID(), candidates)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = driverRepo.Update(ctx, claimed); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.notifyAssignment(ctx, claimed.PushToken(), claimed.ID(), cmd.OrderID())

	return claimed.ID(), nil
}

func (h AssignDeliveryCommandHandler) notifyAssignment(ctx context.Context, pushToken string, driverID, orderID kernel.UUID) {
	if err := h.notifier.NotifyAssignment(ctx, pushToken, driverID, orderID); err != nil {
		h.logger.WarnContext(ctx, "assignment notification failed",
			slog.String("driver_id", driverID.String()),
			slog.String("order_id", orderID.String()),
			slog.Any("error", err))
	}
}

package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// Notifier delivers push notifications to drivers. Notification delivery is
// best effort: a failed push never rolls back the state change it announces.
type Notifier interface {
	// NotifyAssignment tells a driver that a delivery was assigned to them.
	// The pushToken may be empty when the driver has no registered device,
	// in which case implementations skip delivery without error.
	NotifyAssignment(ctx context.Context, pushToken string, driverID, orderID kernel.UUID) error
}

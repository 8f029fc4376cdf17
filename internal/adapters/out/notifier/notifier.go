// Package notifier provides the outbound push notification adapter.
package notifier

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
)

// LogNotifier announces assignments through the application log instead of a
// push gateway. Stands in for the real provider in development and keeps the
// notification path exercised end to end.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that writes assignments to the log.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// NotifyAssignment logs the assignment. Drivers without a registered device
// are skipped silently.
func (n *LogNotifier) NotifyAssignment(ctx context.Context, pushToken string, driverID, orderID kernel.UUID) error {
	if pushToken == "" {
		return nil
	}

	n.logger.InfoContext(ctx, "Delivery assignment notification sent",
		"driver_id", driverID.String(),
		"order_id", orderID.String(),
	)
	return nil
}

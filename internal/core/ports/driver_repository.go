// Package ports defines repository interfaces for the driver domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
// Provides methods for storing, retrieving, and querying driver entities
// with their complete state including statistics and ratings.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// The driver must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	// The driver must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	// Soft deleted drivers are invisible here: requesting one returns
	// an ObjectNotFoundError, exactly like a driver that never existed.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetForUpdate retrieves a driver aggregate and locks its row for the
	// duration of the current transaction. Concurrent state changes to the
	// same driver serialize behind this lock, so every status transition
	// sees the latest committed state. Must be called inside an active
	// transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAvailableForDispatch retrieves dispatch candidates, locked for the
	// current transaction. A candidate is an available, not deleted driver
	// with verified documents.
	//
	// When pickup is nil, all candidates are returned ordered by lifetime
	// delivery count ascending, so new deliveries flow toward the least
	// busy drivers. When pickup is set, candidates are restricted to a
	// bounding box of radiusKm around it and ordered by average rating
	// descending.
	//
	// Rows already locked by a concurrent dispatch are skipped rather than
	// waited on, so simultaneous dispatches never block each other and
	// never claim the same driver. Must be called inside an active
	// transaction.
	GetAvailableForDispatch(ctx context.Context, pickup *kernel.Location, radiusKm float64) ([]*driver.Driver, error)

	// ResetPeriodCounters zeroes the given period's delivery count and
	// earnings for every driver in a single statement. Used by scheduled
	// rollover jobs at period boundaries.
	ResetPeriodCounters(ctx context.Context, kind driver.PeriodKind) error
}

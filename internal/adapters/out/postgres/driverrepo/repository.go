package driverrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing driver to the database.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by ID. Soft deleted drivers are filtered out, so a
// deleted driver is indistinguishable from one that never existed.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a driver by ID and locks its row until the current
// transaction ends. Every state transition goes through this method, which
// serializes concurrent changes to the same driver at the database.
func (r *GormDriverRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	return r.get(ctx, id, true)
}

func (r *GormDriverRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).Preload("Ratings")
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dto DriverDTO
	if err := tx.First(&dto, "id = ? AND is_deleted = false", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAvailableForDispatch retrieves ranked dispatch candidates with their
// rows locked for the current transaction.
//
// Candidate rows are taken FOR UPDATE SKIP LOCKED: a row already locked by a
// concurrent dispatch is skipped instead of waited on, so simultaneous
// dispatches proceed in parallel and can never claim the same driver.
//
// Ranking is done in SQL. Without a pickup point candidates come ordered by
// lifetime delivery count ascending, pushing work toward the least busy
// drivers. With a pickup point the set is cut to a degree bounding box around
// it, drivers with a stale or missing location fix are excluded, and the rest
// come ordered by average rating descending.
func (r *GormDriverRepository) GetAvailableForDispatch(
	ctx context.Context,
	pickup *kernel.Location,
	radiusKm float64,
) ([]*driver.Driver, error) {
	tx := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Options: clause.LockingOptionsSkipLocked}).
		Where("status = ?", driver.StatusAvailable.String()).
		Where("is_deleted = false").
		Where("documents_verified = true")

	if pickup != nil {
		minLat, maxLat, minLon, maxLon, err := pickup.BoundingBox(radiusKm)
		if err != nil {
			return nil, err
		}
		tx = tx.
			Where("latitude BETWEEN ? AND ?", minLat, maxLat).
			Where("longitude BETWEEN ? AND ?", minLon, maxLon).
			Where("location_updated_at > ?", time.Now().Add(-driver.FreshnessWindow)).
			Order("average_rating DESC")
	} else {
		tx = tx.Order("total_deliveries ASC")
	}

	var dtos []DriverDTO
	if err := tx.Find(&dtos).Error; err != nil {
		return nil, err
	}

	// Ratings are loaded separately: Preload cannot share the row lock and
	// the dispatcher only needs the drivers' dispatch state anyway.
	candidates := make([]*driver.Driver, 0, len(dtos))
	for i := range dtos {
		if err := r.loadRatings(ctx, &dtos[i]); err != nil {
			return nil, err
		}
		candidate, err := toDomain(dtos[i])
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

func (r *GormDriverRepository) loadRatings(ctx context.Context, dto *DriverDTO) error {
	return r.db.WithContext(ctx).
		Where("driver_id = ?", dto.ID).
		Order("created_at").
		Find(&dto.Ratings).Error
}

// ResetPeriodCounters zeroes one period's delivery count and earnings for
// every driver in a single statement. Lifetime totals and averages are
// untouched, as are the other periods' buckets.
func (r *GormDriverRepository) ResetPeriodCounters(ctx context.Context, kind driver.PeriodKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	var assignments map[string]any
	switch kind {
	case driver.PeriodDaily:
		assignments = map[string]any{"completed_today": 0, "earnings_today": 0}
	case driver.PeriodWeekly:
		assignments = map[string]any{"completed_this_week": 0, "earnings_this_week": 0}
	case driver.PeriodMonthly:
		assignments = map[string]any{"completed_this_month": 0, "earnings_this_month": 0}
	default:
		return errs.NewValueIsInvalidError("kind")
	}

	return r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("1 = 1"). // gorm refuses to run an UPDATE without a WHERE clause
		Updates(assignments).Error
}

package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindNearbyDriversQueryHandler searches for dispatchable drivers around a
// point. Uses direct SQL against the drivers table for optimal read
// performance in the CQRS pattern; results never pass through the aggregate.
type FindNearbyDriversQueryHandler struct {
	db *gorm.DB
}

// NewFindNearbyDriversQueryHandler creates a handler for nearby driver searches.
// Requires a GORM database connection for query execution.
func NewFindNearbyDriversQueryHandler(db *gorm.DB) FindNearbyDriversQueryHandler {
	return FindNearbyDriversQueryHandler{db: db}
}

// Handle executes the nearby search.
// Filters to available, not deleted, documents-verified drivers with a
// location fix inside the bounding box and fresher than the freshness
// window. Results are ordered by average rating descending.
func (h FindNearbyDriversQueryHandler) Handle(
	ctx context.Context,
	query FindNearbyDriversQuery,
) ([]FindNearbyDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	minLat, maxLat, minLon, maxLon, err := query.Center().BoundingBox(query.RadiusKm())
	if err != nil {
		return nil, err
	}
	staleBefore := time.Now().Add(-driver.FreshnessWindow)

	drivers := make([]FindNearbyDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			vehicle_type,
			latitude,
			longitude,
			average_rating,
			total_ratings
		FROM drivers
		WHERE status = ?
		  AND is_deleted = false
		  AND documents_verified = true
		  AND latitude BETWEEN ? AND ?
		  AND longitude BETWEEN ? AND ?
		  AND location_updated_at >= ?
		ORDER BY average_rating DESC
		LIMIT ?
	`, driver.StatusAvailable.String(), minLat, maxLat, minLon, maxLon, staleBefore, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response FindNearbyDriversQueryResponse
		var id uuid.UUID
		var latitude, longitude float64

		err = rows.Scan(
			&id,
			&response.Name,
			&response.VehicleType,
			&latitude,
			&longitude,
			&response.AverageRating,
			&response.TotalRatings,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = driverID

		location, locErr := kernel.NewLocation(latitude, longitude)
		if locErr != nil {
			return nil, locErr
		}
		response.Location = location

		drivers = append(drivers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverQueryHandler retrieves a driver profile read model.
// Reads the drivers table directly, bypassing the aggregate.
type GetDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverQueryHandler creates a handler for driver profile queries.
func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

// Handle executes the profile query.
// Returns an ObjectNotFoundError for unknown and soft deleted drivers alike;
// a deleted driver is indistinguishable from one that never existed.
func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (GetDriverQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			vehicle_type,
			vehicle_plate,
			status,
			active_delivery_id,
			latitude,
			longitude,
			location_updated_at,
			total_deliveries,
			completed_today,
			completed_this_week,
			completed_this_month,
			total_earnings,
			earnings_today,
			average_delivery_time,
			average_rating,
			total_ratings,
			last_delivery_at,
			email_verified,
			phone_verified,
			documents_verified
		FROM drivers
		WHERE id = ? AND is_deleted = false
	`, query.DriverID().String()).Row()

	var response GetDriverQueryResponse
	var id uuid.UUID
	var activeDeliveryID uuid.NullUUID
	var latitude, longitude sql.NullFloat64
	var locationUpdatedAt, lastDeliveryAt sql.NullTime

	err := row.Scan(
		&id,
		&response.Name,
		&response.Email,
		&response.Phone,
		&response.VehicleType,
		&response.VehiclePlate,
		&response.Status,
		&activeDeliveryID,
		&latitude,
		&longitude,
		&locationUpdatedAt,
		&response.TotalDeliveries,
		&response.CompletedToday,
		&response.CompletedThisWeek,
		&response.CompletedThisMonth,
		&response.TotalEarnings,
		&response.EarningsToday,
		&response.AverageDeliveryTime,
		&response.AverageRating,
		&response.TotalRatings,
		&lastDeliveryAt,
		&response.EmailVerified,
		&response.PhoneVerified,
		&response.DocumentsVerified,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDriverQueryResponse{}, errs.NewObjectNotFoundError("driver", query.DriverID())
	}
	if err != nil {
		return GetDriverQueryResponse{}, err
	}

	driverID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetDriverQueryResponse{}, err
	}
	response.ID = driverID

	if activeDeliveryID.Valid {
		orderID, idErr := kernel.UUIDFromBytes(activeDeliveryID.UUID[:])
		if idErr != nil {
			return GetDriverQueryResponse{}, idErr
		}
		response.ActiveDeliveryID = &orderID
	}

	if latitude.Valid && longitude.Valid {
		location, locErr := kernel.NewLocation(latitude.Float64, longitude.Float64)
		if locErr != nil {
			return GetDriverQueryResponse{}, locErr
		}
		response.Location = &location
	}
	if locationUpdatedAt.Valid {
		at := locationUpdatedAt.Time
		response.LocationUpdatedAt = &at
	}
	if lastDeliveryAt.Valid {
		at := lastDeliveryAt.Time
		response.LastDeliveryAt = &at
	}

	return response, nil
}

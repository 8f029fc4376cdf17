package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/driver"

	"gorm.io/gorm"
)

// GetFleetStatisticsQueryHandler computes the fleet snapshot in a single
// aggregate statement. Counting in SQL keeps the query one round trip
// regardless of fleet size.
type GetFleetStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetFleetStatisticsQueryHandler creates a handler for fleet snapshots.
func NewGetFleetStatisticsQueryHandler(db *gorm.DB) GetFleetStatisticsQueryHandler {
	return GetFleetStatisticsQueryHandler{db: db}
}

// Handle executes the snapshot query.
func (h GetFleetStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetFleetStatisticsQuery,
) (GetFleetStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFleetStatisticsQueryResponse{}, err
	}

	staleBefore := time.Now().Add(-driver.FreshnessWindow)

	var response GetFleetStatisticsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COALESCE(SUM(total_deliveries), 0),
			COALESCE(SUM(completed_today), 0),
			COALESCE(SUM(total_earnings), 0),
			COALESCE(SUM(earnings_today), 0),
			COALESCE(AVG(average_rating) FILTER (WHERE total_ratings > 0), 0),
			COUNT(*) FILTER (WHERE documents_verified),
			COUNT(*) FILTER (WHERE location_updated_at >= ?)
		FROM drivers
		WHERE is_deleted = false
	`,
		driver.StatusOffline.String(),
		driver.StatusAvailable.String(),
		driver.StatusOnDelivery.String(),
		staleBefore,
	).Row()

	err := row.Scan(
		&response.TotalDrivers,
		&response.OfflineDrivers,
		&response.AvailableDrivers,
		&response.OnDeliveryDrivers,
		&response.TotalDeliveries,
		&response.DeliveriesToday,
		&response.TotalEarnings,
		&response.EarningsToday,
		&response.AverageRating,
		&response.DocumentsVerified,
		&response.WithFreshLocationFix,
	)
	if err != nil {
		return GetFleetStatisticsQueryResponse{}, err
	}

	return response, nil
}

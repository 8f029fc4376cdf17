package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetDriverQueryIsNotConstructed = errors.New(
	"GetDriverQuery must be created via NewGetDriverQuery constructor",
)

// GetDriverQuery retrieves a single driver's profile and statistics.
// Soft deleted drivers are not visible through this query.
type GetDriverQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverQuery creates a query to retrieve one driver.
func NewGetDriverQuery(driverID kernel.UUID) (GetDriverQuery, error) {
	query := GetDriverQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := driverID.Validate(); err != nil {
		return GetDriverQuery{}, err
	}

	query.driverID = driverID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

// DriverID returns the requested driver's ID.
func (q GetDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}

// GetDriverQueryResponse is the read model for a driver profile.
// Location fields are nil until the driver reports a first fix.
type GetDriverQueryResponse struct {
	ID                kernel.UUID
	Name              string
	Email             string
	Phone             string
	VehicleType       string
	VehiclePlate      string
	Status            string
	ActiveDeliveryID  *kernel.UUID
	Location          *kernel.Location
	LocationUpdatedAt *time.Time

	TotalDeliveries     int
	CompletedToday      int
	CompletedThisWeek   int
	CompletedThisMonth  int
	TotalEarnings       float64
	EarningsToday       float64
	AverageDeliveryTime float64
	AverageRating       float64
	TotalRatings        int
	LastDeliveryAt      *time.Time

	EmailVerified     bool
	PhoneVerified     bool
	DocumentsVerified bool
}

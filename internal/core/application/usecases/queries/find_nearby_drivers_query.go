// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrFindNearbyDriversQueryIsNotConstructed = errors.New(
	"FindNearbyDriversQuery must be created via NewFindNearbyDriversQuery constructor",
)

// FindNearbyDriversQuery retrieves available drivers close to a point.
// Proximity uses a degree bounding box derived from the radius, not true
// great-circle distance: cheap, index friendly, and accurate enough for a
// city-scale dispatch radius. Only drivers with a fresh location fix
// qualify; a driver whose device went quiet is not really nearby.
//
// Example:
//
//	pickup, _ := kernel.NewLocation(25.2048, 55.2708)
//	query, err := NewFindNearbyDriversQuery(pickup, 5, 20)
//	if err != nil {
//	    return fmt.Errorf("invalid nearby search: %w", err)
//	}
//
//	drivers, err := handler.Handle(ctx, query)
//	for _, d := range drivers {
//	    fmt.Printf("%s rated %.1f at (%.4f, %.4f)\n",
//	        d.Name, d.AverageRating, d.Location.Latitude(), d.Location.Longitude())
//	}
type FindNearbyDriversQuery struct { //nolint:recvcheck //using for validation
	center   kernel.Location
	radiusKm float64
	limit    int

	guard guard.ConstructorGuard
}

// DefaultNearbyLimit caps the result set when the caller passes limit 0.
const DefaultNearbyLimit = 50

// NewFindNearbyDriversQuery creates a query for available drivers around a
// point. The radius must be positive; limit 0 selects DefaultNearbyLimit.
func NewFindNearbyDriversQuery(center kernel.Location, radiusKm float64, limit int) (FindNearbyDriversQuery, error) {
	query := FindNearbyDriversQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := center.Validate(); err != nil {
		return FindNearbyDriversQuery{}, err
	}
	if radiusKm <= 0 {
		return FindNearbyDriversQuery{}, errs.NewValueIsInvalidError("radiusKm")
	}
	if limit < 0 {
		return FindNearbyDriversQuery{}, errs.NewValueIsInvalidError("limit")
	}
	if limit == 0 {
		limit = DefaultNearbyLimit
	}

	query.center = center
	query.radiusKm = radiusKm
	query.limit = limit

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q FindNearbyDriversQuery) Validate() error {
	return q.guard.Validate(ErrFindNearbyDriversQueryIsNotConstructed)
}

// Center returns the search center point.
func (q FindNearbyDriversQuery) Center() kernel.Location {
	return q.center
}

// RadiusKm returns the search radius in kilometers.
func (q FindNearbyDriversQuery) RadiusKm() float64 {
	return q.radiusKm
}

// Limit returns the maximum number of drivers to return.
func (q FindNearbyDriversQuery) Limit() int {
	return q.limit
}

// FindNearbyDriversQueryResponse represents a nearby driver in the read model.
type FindNearbyDriversQueryResponse struct {
	ID            kernel.UUID
	Name          string
	VehicleType   string
	Location      kernel.Location
	AverageRating float64
	TotalRatings  int
}

package kernel

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0

	// KilometersPerDegree is the approximate number of kilometers per degree
	// of latitude. Proximity queries convert a radius in kilometers to a
	// degree offset by dividing by this constant, producing a bounding box
	// rather than a great-circle distance. This is a documented precision
	// shortcut: near the poles the box is wider than the radius suggests.
	KilometersPerDegree = 111.0
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location represents a validated geographic point (latitude/longitude in
// degrees). Location is an immutable value object; the zero value is invalid
// and fails Validate.
//
// Example:
//
//	loc, err := kernel.NewLocation(25.2048, 55.2708)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(loc) // Location(25.204800, 55.270800)
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location with the specified coordinates.
// Latitude must be within [LatitudeMin, LatitudeMax] and longitude within
// [LongitudeMin, LongitudeMax]; out-of-range values yield a
// ValueIsOutOfRangeError.
func NewLocation(latitude, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Latitude returns the latitude in degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// IsEqual compares two locations for exact coordinate equality.
func (l Location) IsEqual(other Location) bool {
	return l.latitude == other.latitude && l.longitude == other.longitude
}

// BoundingBox returns the coordinate bounds of a square box of the given
// radius centered on this location, using the KilometersPerDegree
// approximation. Results are not clamped to the valid coordinate ranges;
// callers compare stored coordinates against the raw bounds.
func (l Location) BoundingBox(radiusKm float64) (minLat, maxLat, minLon, maxLon float64, err error) {
	if err = l.Validate(); err != nil {
		return 0, 0, 0, 0, err
	}
	if radiusKm < 0 {
		return 0, 0, 0, 0, errs.NewValueIsInvalidError("radiusKm")
	}

	delta := radiusKm / KilometersPerDegree
	return l.latitude - delta, l.latitude + delta, l.longitude - delta, l.longitude + delta, nil
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("Location(%f, %f)", l.latitude, l.longitude)
}

// Validate checks that the Location was created via NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l *Location) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	l.longitude = longitude
	return nil
}

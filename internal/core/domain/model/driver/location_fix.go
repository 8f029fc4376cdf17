package driver

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// FreshnessWindow is the interval after which a stored location fix is
// considered stale. Staleness is a derived property computed against the
// fix timestamp, never stored.
const FreshnessWindow = 2 * time.Minute

const (
	headingMin = 0.0
	headingMax = 360.0
)

// ErrLocationFixIsNotConstructed is returned when using an improperly initialized LocationFix.
var ErrLocationFixIsNotConstructed = errors.New(
	"LocationFix must be created via NewLocationFix constructor")

// LocationFix is an immutable value object capturing one GPS report from a
// driver's device: coordinates plus optional accuracy (meters), heading
// (degrees, [0,360)) and speed (non-negative), stamped with the time the fix
// was applied. A driver either has a complete fix or none at all; partial
// location state does not exist.
type LocationFix struct {
	location  kernel.Location
	accuracy  *float64
	heading   *float64
	speed     *float64
	updatedAt time.Time
	guard     guard.ConstructorGuard
}

// NewLocationFix creates a LocationFix from a validated location and the
// optional accuracy/heading/speed readings. Out-of-range readings yield a
// validation error and no fix.
func NewLocationFix(
	location kernel.Location,
	accuracy, heading, speed *float64,
	updatedAt time.Time,
) (LocationFix, error) {
	if err := location.Validate(); err != nil {
		return LocationFix{}, err
	}
	if accuracy != nil && *accuracy < 0 {
		return LocationFix{}, errs.NewValueIsInvalidError("accuracy")
	}
	if heading != nil && (*heading < headingMin || *heading >= headingMax) {
		return LocationFix{}, errs.NewValueIsOutOfRangeError("heading", *heading, headingMin, headingMax)
	}
	if speed != nil && *speed < 0 {
		return LocationFix{}, errs.NewValueIsInvalidError("speed")
	}
	if updatedAt.IsZero() {
		return LocationFix{}, errs.NewValueIsRequiredError("updatedAt")
	}

	return LocationFix{
		location:  location,
		accuracy:  accuracy,
		heading:   heading,
		speed:     speed,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Location returns the coordinates of the fix.
func (f LocationFix) Location() kernel.Location {
	return f.location
}

// Accuracy returns the reported accuracy in meters, or nil if not reported.
func (f LocationFix) Accuracy() *float64 {
	return f.accuracy
}

// Heading returns the reported heading in degrees, or nil if not reported.
func (f LocationFix) Heading() *float64 {
	return f.heading
}

// Speed returns the reported speed, or nil if not reported.
func (f LocationFix) Speed() *float64 {
	return f.speed
}

// UpdatedAt returns the time the fix was applied.
func (f LocationFix) UpdatedAt() time.Time {
	return f.updatedAt
}

// IsFresh reports whether the fix is within the FreshnessWindow of now.
func (f LocationFix) IsFresh(now time.Time) bool {
	return now.Sub(f.updatedAt) <= FreshnessWindow
}

// Validate checks that the LocationFix was created via NewLocationFix.
func (f LocationFix) Validate() error {
	return f.guard.Validate(ErrLocationFixIsNotConstructed)
}

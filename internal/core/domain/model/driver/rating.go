package driver

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// RatingMin is the lowest accepted rating value.
	RatingMin = 1
	// RatingMax is the highest accepted rating value.
	RatingMax = 5
)

// ErrRatingIsNotConstructed is returned when using an improperly initialized Rating.
var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating constructor")

// Rating is an immutable entry in a driver's append-only rating history.
// The rating value is validated to [RatingMin, RatingMax] at construction;
// the comment is optional.
type Rating struct {
	orderID   kernel.UUID
	value     int
	comment   string
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewRating creates a Rating for the given order.
// Returns a validation error for an out-of-range value or invalid order id.
func NewRating(orderID kernel.UUID, value int, comment string, createdAt time.Time) (Rating, error) {
	if err := orderID.Validate(); err != nil {
		return Rating{}, err
	}
	if value < RatingMin || value > RatingMax {
		return Rating{}, errs.NewValueIsOutOfRangeError("rating", value, RatingMin, RatingMax)
	}
	if createdAt.IsZero() {
		return Rating{}, errs.NewValueIsRequiredError("createdAt")
	}

	return Rating{
		orderID:   orderID,
		value:     value,
		comment:   comment,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order the rating refers to.
func (r Rating) OrderID() kernel.UUID {
	return r.orderID
}

// Value returns the rating value in [RatingMin, RatingMax].
func (r Rating) Value() int {
	return r.value
}

// Comment returns the optional free-form comment.
func (r Rating) Comment() string {
	return r.comment
}

// CreatedAt returns the submission time.
func (r Rating) CreatedAt() time.Time {
	return r.createdAt
}

// Validate checks that the Rating was created via NewRating.
func (r Rating) Validate() error {
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

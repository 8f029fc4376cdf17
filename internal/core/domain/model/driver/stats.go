package driver

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrStatsIsNotConstructed is returned when using improperly initialized Stats.
var ErrStatsIsNotConstructed = errors.New("Stats must be created via NewStats or RestoreStats")

// PeriodKind selects which caller-reset counter bucket an operation targets.
// Period boundaries are an external scheduler's concern; the domain only
// performs the deterministic overwrite-to-zero.
type PeriodKind int

const (
	// PeriodUnknown represents an invalid or undefined period kind.
	PeriodUnknown PeriodKind = iota
	// PeriodDaily targets the today counters.
	PeriodDaily
	// PeriodWeekly targets the this-week counters.
	PeriodWeekly
	// PeriodMonthly targets the this-month counters.
	PeriodMonthly
)

func getValidPeriodKindStrings() map[PeriodKind]string {
	//nolint:exhaustive // PeriodUnknown is intentionally excluded as it's invalid
	return map[PeriodKind]string{
		PeriodDaily:   "daily",
		PeriodWeekly:  "weekly",
		PeriodMonthly: "monthly",
	}
}

// PeriodKindFromString parses a period kind from its wire representation.
func PeriodKindFromString(s string) (PeriodKind, error) {
	for kind, str := range getValidPeriodKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return PeriodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"periodKind", fmt.Errorf("%q is not a valid period kind", s))
}

// Validate checks if the PeriodKind value is valid.
func (k PeriodKind) Validate() error {
	if _, ok := getValidPeriodKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"periodKind", fmt.Errorf("%d is not a valid period kind", k))
	}
	return nil
}

// String returns the wire name of the period kind.
func (k PeriodKind) String() string {
	if str, ok := getValidPeriodKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Stats holds a driver's rolling performance figures: lifetime totals,
// caller-reset period counters, and incrementally maintained averages.
//
// Averages are running means: they are recomputed from the previous average
// and the post-increment count, never by re-scanning history. This is only
// correct when updates to the same driver are serialized, which the
// application layer guarantees with one transaction per driver record.
//
// Period counters (today/week/month) are zeroed by an external scheduler via
// ResetPeriod; lifetime totals and averages are never touched by resets.
type Stats struct {
	totalDeliveries    int
	completedToday     int
	completedThisWeek  int
	completedThisMonth int

	totalEarnings     float64
	earningsToday     float64
	earningsThisWeek  float64
	earningsThisMonth float64

	averageDeliveryTime float64
	averageRating       float64
	totalRatings        int

	lastDeliveryAt *time.Time

	guard guard.ConstructorGuard
}

// NewStats creates zeroed stats for a freshly registered driver.
func NewStats() Stats {
	return Stats{guard: guard.NewConstructorGuard()}
}

// RestoreStats reconstructs stats from persistent storage.
// All counts must be non-negative and averages consistent with zero counts.
func RestoreStats(
	totalDeliveries, completedToday, completedThisWeek, completedThisMonth int,
	totalEarnings, earningsToday, earningsThisWeek, earningsThisMonth float64,
	averageDeliveryTime, averageRating float64,
	totalRatings int,
	lastDeliveryAt *time.Time,
) (Stats, error) {
	if totalDeliveries < 0 || completedToday < 0 || completedThisWeek < 0 || completedThisMonth < 0 {
		return Stats{}, errs.NewValueIsInvalidError("delivery counters")
	}
	if totalRatings < 0 {
		return Stats{}, errs.NewValueIsInvalidError("totalRatings")
	}
	if totalDeliveries == 0 && averageDeliveryTime != 0 {
		return Stats{}, errs.NewValueIsInvalidError("averageDeliveryTime")
	}
	if totalRatings == 0 && averageRating != 0 {
		return Stats{}, errs.NewValueIsInvalidError("averageRating")
	}

	return Stats{
		totalDeliveries:     totalDeliveries,
		completedToday:      completedToday,
		completedThisWeek:   completedThisWeek,
		completedThisMonth:  completedThisMonth,
		totalEarnings:       totalEarnings,
		earningsToday:       earningsToday,
		earningsThisWeek:    earningsThisWeek,
		earningsThisMonth:   earningsThisMonth,
		averageDeliveryTime: averageDeliveryTime,
		averageRating:       averageRating,
		totalRatings:        totalRatings,
		lastDeliveryAt:      lastDeliveryAt,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// RecordDelivery applies one completed delivery to the stats: increments the
// lifetime and period delivery counters, adds earnings to all earnings
// buckets, folds the delivery time into the running average using the
// post-increment count, and stamps lastDeliveryAt.
//
// Inputs are validated before any field changes, so a failed call leaves the
// stats exactly as they were.
func (s *Stats) RecordDelivery(deliveryTimeMinutes, earnings float64, now time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if deliveryTimeMinutes < 0 {
		return errs.NewValueIsInvalidError("deliveryTimeMinutes")
	}
	if earnings < 0 {
		return errs.NewValueIsInvalidError("earnings")
	}
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}

	s.totalDeliveries++
	s.completedToday++
	s.completedThisWeek++
	s.completedThisMonth++

	s.totalEarnings += earnings
	s.earningsToday += earnings
	s.earningsThisWeek += earnings
	s.earningsThisMonth += earnings

	n := float64(s.totalDeliveries)
	s.averageDeliveryTime = (s.averageDeliveryTime*(n-1) + deliveryTimeMinutes) / n

	completedAt := now
	s.lastDeliveryAt = &completedAt
	return nil
}

// RecordRating folds one rating value into the running rating average,
// keyed on the post-increment rating count. Range validation of the value
// happens in NewRating; callers pass an already validated rating.
func (s *Stats) RecordRating(value int) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if value < RatingMin || value > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", value, RatingMin, RatingMax)
	}

	s.totalRatings++
	n := float64(s.totalRatings)
	s.averageRating = (s.averageRating*(n-1) + float64(value)) / n
	return nil
}

// ResetPeriod zeroes the completed-count and earnings counters of the given
// period. Lifetime totals and averages are never touched. The operation is a
// deterministic overwrite-to-zero, so accidental double invocation at a
// period boundary is harmless.
func (s *Stats) ResetPeriod(kind PeriodKind) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := kind.Validate(); err != nil {
		return err
	}

	switch kind {
	case PeriodDaily:
		s.completedToday = 0
		s.earningsToday = 0
	case PeriodWeekly:
		s.completedThisWeek = 0
		s.earningsThisWeek = 0
	case PeriodMonthly:
		s.completedThisMonth = 0
		s.earningsThisMonth = 0
	case PeriodUnknown:
		// unreachable after Validate
	}
	return nil
}

// TotalDeliveries returns the lifetime completed-delivery count.
func (s Stats) TotalDeliveries() int { return s.totalDeliveries }

// CompletedToday returns the today delivery counter.
func (s Stats) CompletedToday() int { return s.completedToday }

// CompletedThisWeek returns the this-week delivery counter.
func (s Stats) CompletedThisWeek() int { return s.completedThisWeek }

// CompletedThisMonth returns the this-month delivery counter.
func (s Stats) CompletedThisMonth() int { return s.completedThisMonth }

// TotalEarnings returns the lifetime earnings total.
func (s Stats) TotalEarnings() float64 { return s.totalEarnings }

// EarningsToday returns the today earnings counter.
func (s Stats) EarningsToday() float64 { return s.earningsToday }

// EarningsThisWeek returns the this-week earnings counter.
func (s Stats) EarningsThisWeek() float64 { return s.earningsThisWeek }

// EarningsThisMonth returns the this-month earnings counter.
func (s Stats) EarningsThisMonth() float64 { return s.earningsThisMonth }

// AverageDeliveryTime returns the running mean delivery time in minutes.
func (s Stats) AverageDeliveryTime() float64 { return s.averageDeliveryTime }

// AverageRating returns the running mean rating.
func (s Stats) AverageRating() float64 { return s.averageRating }

// TotalRatings returns the number of ratings folded into the average.
func (s Stats) TotalRatings() int { return s.totalRatings }

// LastDeliveryAt returns the completion time of the most recent delivery,
// or nil if the driver has not completed any.
func (s Stats) LastDeliveryAt() *time.Time { return s.lastDeliveryAt }

// Validate checks that the Stats were created via a constructor.
func (s Stats) Validate() error {
	return s.guard.Validate(ErrStatsIsNotConstructed)
}

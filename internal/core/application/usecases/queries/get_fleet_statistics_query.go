package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetFleetStatisticsQueryIsNotConstructed = errors.New(
	"GetFleetStatisticsQuery must be created via NewGetFleetStatisticsQuery constructor",
)

// GetFleetStatisticsQuery retrieves an operations snapshot of the fleet:
// headcounts per status plus aggregate delivery and rating figures.
// Soft deleted drivers are excluded from every figure.
//
// Example:
//
//	query := NewGetFleetStatisticsQuery()
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve fleet statistics: %w", err)
//	}
//	fmt.Printf("%d of %d drivers available\n", stats.AvailableDrivers, stats.TotalDrivers)
type GetFleetStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFleetStatisticsQuery creates a query for the fleet snapshot.
// This is a parameterless query.
func NewGetFleetStatisticsQuery() GetFleetStatisticsQuery {
	return GetFleetStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFleetStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetStatisticsQueryIsNotConstructed)
}

// GetFleetStatisticsQueryResponse is the fleet snapshot read model.
// AverageRating averages only over drivers that have been rated at least
// once; an unrated fleet reports zero.
type GetFleetStatisticsQueryResponse struct {
	TotalDrivers      int
	OfflineDrivers    int
	AvailableDrivers  int
	OnDeliveryDrivers int

	TotalDeliveries      int
	DeliveriesToday      int
	TotalEarnings        float64
	EarningsToday        float64
	AverageRating        float64
	DocumentsVerified    int
	WithFreshLocationFix int
}

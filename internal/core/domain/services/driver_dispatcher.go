package services

import (
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrNoDriverAvailable is returned when no eligible driver can take a
// delivery. This is a legitimate empty-result condition, not a fault: the
// caller decides retry, backoff, or escalation.
var ErrNoDriverAvailable = errors.New("no driver available")

// DriverDispatcher is a domain service that claims the best candidate driver
// for a delivery. Candidates arrive already ranked by the repository:
// ascending lifetime delivery count by default (load-balancing toward
// less-busy drivers), or descending rating when a pickup location restricted
// the candidate set to a proximity box.
//
// The claim loop is optimistic: a candidate that turned out to be ineligible
// or already claimed by a concurrent dispatch is skipped and the next
// candidate is tried. The retry is bounded by the candidate list; it is never
// infinite and never blocks other dispatches.
type DriverDispatcher struct{}

// NewDriverDispatcher creates a new DriverDispatcher instance.
func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{}
}

// Dispatch walks the ranked candidates and assigns the delivery to the first
// driver that accepts it. Candidates that are soft-deleted, lack verified
// documents, or conflict on the status transition are skipped.
//
// Returns the claimed driver, or ErrNoDriverAvailable when every candidate
// was skipped. Any error other than a transition conflict aborts the
// dispatch.
func (DriverDispatcher) Dispatch(orderID kernel.UUID, candidates []*driver.Driver) (*driver.Driver, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if candidate.IsDeleted() || !candidate.DocumentsVerified() {
			continue
		}

		err := candidate.AssignDelivery(orderID)
		if errors.Is(err, errs.ErrConflict) {
			// concurrently claimed or otherwise not available anymore
			continue
		}
		if err != nil {
			return nil, err
		}

		return candidate, nil
	}

	return nil, ErrNoDriverAvailable
}

package driver

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a driver.
// It implements a state machine with defined transitions so drivers follow
// the correct operational workflow.
//
// State transitions:
//
//	Offline ──> Available ──> OnDelivery
//	   ▲            ▲              │
//	   │            └──────────────┘
//	   └────────── (any state, sign-off or admin disable)
//
// A driver is OnDelivery if and only if an active delivery id is set on the
// aggregate; every transition method maintains that invariant.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusOffline is the initial status after registration and the state a
	// driver returns to on sign-off, admin disable, or soft delete.
	StatusOffline

	// StatusAvailable indicates the driver has opted in and can be dispatched.
	StatusAvailable

	// StatusOnDelivery indicates the driver is carrying out an assigned delivery.
	StatusOnDelivery
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusOffline:    "offline",
		StatusAvailable:  "available",
		StatusOnDelivery: "on_delivery",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusOffline:    "offline",
		StatusAvailable:  "available",
		StatusOnDelivery: "on_delivery",
	}
}

// StatusFromString parses a status from its wire representation.
// Used when reconstructing drivers from persistence or external input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: StatusOffline, StatusAvailable, StatusOnDelivery.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("offline", "available",
// "on_delivery"). Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

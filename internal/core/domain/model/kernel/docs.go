// Package kernel contains shared value objects used across the dispatch domain.
//
// The package provides:
//   - UUID: validated unique identifiers for drivers and orders
//   - Location: validated geographic coordinates with the bounding-box
//     approximation used by proximity queries
//
// All value objects are immutable and enforce the constructor-guard pattern:
// the zero value is invalid and fails Validate, so instances can only be
// obtained via the provided constructors.
package kernel

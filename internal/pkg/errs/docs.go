// Package errs provides standardized error types for the dispatch service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The taxonomy mirrors how callers are expected to react:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed input, rejected before any state change; retry with corrected input
//   - ObjectNotFoundError: unknown or soft-deleted object identifier
//   - ConflictError: operation illegal in the object's current state; the caller
//     must re-select a candidate or re-read state, nothing was overwritten
//
// Each error type follows a consistent pattern:
//   - a sentinel error variable (e.g. ErrConflict) for errors.Is classification
//   - a struct type carrying error details
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
package errs

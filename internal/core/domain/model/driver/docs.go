// Package driver contains the Driver aggregate: the single unit of
// consistency for a driver's status state machine, location fix, rolling
// performance stats, and rating history.
//
// The aggregate enforces the core invariants of the dispatch domain:
//   - status "on_delivery" exactly when an active delivery id is present
//   - averages maintained as running means over the recorded events
//   - a location fix is complete or absent, never partial
//   - soft-deleted drivers are offline and invisible to queries
//
// Concurrency is the caller's concern: the application layer serializes
// operations on the same driver (one row-locked transaction per driver);
// the aggregate itself holds no locks.
package driver

// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dispatch system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DriverDispatcher: A domain service for claiming the best candidate driver for a delivery
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services

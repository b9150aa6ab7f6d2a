// Package services provides domain services that orchestrate business operations
// across multiple domain entities. It implements logic that doesn't naturally
// belong to a single aggregate root.
//
// The package includes:
//   - RouteComposer: A domain service that orders delivery stops by distance from the depot
//   - ReservationMatcher: A domain service that finds active order lines reserving stock for a catalog item
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services

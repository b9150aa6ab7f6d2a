// Package delivery provides domain entities and business logic for delivery
// run management. It implements the Delivery aggregate root with driver
// assignment, routed stop handling, and lifecycle transitions.
//
// The package includes:
//   - Delivery: The aggregate root that manages the run's driver, date, and stops
//   - Stop: A value object holding a customer visit with its location and price
//   - RoutedStop: A stop annotated with its position in the composed route
//   - Status: The run lifecycle (planned, completed, canceled)
//
// Key business rules:
//   - Deliveries must have a valid unique identifier
//   - Stops can only be changed while the run is still planned
//   - A customer appears at most once per run
//   - Completed and canceled runs are terminal
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package delivery

package ports

import (
	"context"

	"coldroute/internal/core/domain/model/delivery"
	"coldroute/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate with its routed stops.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// Stops are replaced wholesale since routes are always recomposed.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns the complete run with stops in route order.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAllPlanned retrieves all runs still in planned status.
	GetAllPlanned(ctx context.Context) ([]*delivery.Delivery, error)
}

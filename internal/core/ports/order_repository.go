package ports

import (
	"context"

	"gelsin/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Identifiers are assigned by the store, so Add returns the persisted
// aggregate carrying the generated order, item and delivery identifiers.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items and
	// delivery record, and returns the aggregate as persisted.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its items and delivery record.
	Get(ctx context.Context, id int64) (*order.Order, error)
}

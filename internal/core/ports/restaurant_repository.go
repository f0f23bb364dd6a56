package ports

import (
	"context"

	"gelsin/internal/core/domain/model/catalog"
)

// RestaurantRepository defines the persistence contract for the catalog:
// restaurant entities and their menu items. The order engine only reads
// from it; mutations come from the catalog management commands.
type RestaurantRepository interface {
	// Add persists a new restaurant and returns it as persisted.
	// Fails if the owner already has a restaurant.
	Add(ctx context.Context, restaurant *catalog.Restaurant) (*catalog.Restaurant, error)

	// Get retrieves a restaurant by its unique identifier.
	Get(ctx context.Context, id int64) (*catalog.Restaurant, error)

	// GetByOwner retrieves the restaurant owned by the given user.
	// Each owner has at most one restaurant.
	GetByOwner(ctx context.Context, ownerUserID int64) (*catalog.Restaurant, error)

	// AddMenuItem persists a new menu item and returns it as persisted.
	AddMenuItem(ctx context.Context, item *catalog.MenuItem) (*catalog.MenuItem, error)

	// GetMenuItem retrieves a menu item by its unique identifier,
	// regardless of its active flag or owning restaurant. Callers
	// validate both before snapshotting the item into an order.
	GetMenuItem(ctx context.Context, id int64) (*catalog.MenuItem, error)
}

package queries

import (
	"errors"

	"gelsin/internal/core/domain/model/kernel"
	"gelsin/internal/pkg/guard"
)

var (
	// ErrListMenuQueryIsNotConstructed is returned when a ListMenuQuery
	// bypassed its constructor.
	ErrListMenuQueryIsNotConstructed = errors.New(
		"ListMenuQuery must be created via NewListMenuQuery constructor",
	)

	// ErrRestaurantIDIsRequired is returned when the restaurant id is missing.
	ErrRestaurantIDIsRequired = errors.New("restaurant id is required")
)

// ListMenuQuery retrieves the active menu of one restaurant.
type ListMenuQuery struct {
	restaurantID int64

	guard guard.ConstructorGuard
}

// NewListMenuQuery creates a query for a restaurant's active menu items.
func NewListMenuQuery(restaurantID int64) (ListMenuQuery, error) {
	if restaurantID <= 0 {
		return ListMenuQuery{}, ErrRestaurantIDIsRequired
	}

	return ListMenuQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListMenuQuery) Validate() error {
	return q.guard.Validate(ErrListMenuQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant to list.
func (q ListMenuQuery) RestaurantID() int64 {
	return q.restaurantID
}

// ListMenuQueryResponse is one orderable menu entry with its current price.
type ListMenuQueryResponse struct {
	ID    int64
	Name  string
	Price kernel.Money
}

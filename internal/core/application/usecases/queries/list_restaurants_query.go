package queries

import (
	"errors"

	"gelsin/internal/pkg/guard"
)

// ErrListRestaurantsQueryIsNotConstructed is returned when a
// ListRestaurantsQuery bypassed its constructor.
var ErrListRestaurantsQueryIsNotConstructed = errors.New(
	"ListRestaurantsQuery must be created via NewListRestaurantsQuery constructor",
)

// ListRestaurantsQuery retrieves the public restaurant catalog.
// This is a parameterless query available to any caller.
type ListRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewListRestaurantsQuery creates a query to list all restaurants.
func NewListRestaurantsQuery() ListRestaurantsQuery {
	return ListRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantsQueryIsNotConstructed)
}

// ListRestaurantsQueryResponse is one catalog entry of the public listing.
type ListRestaurantsQueryResponse struct {
	ID      int64
	Name    string
	Address string
	IsOpen  bool
}

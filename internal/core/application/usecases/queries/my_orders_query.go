// Package queries contains read-only operations over the store.
// Implements the Query pattern for the read side of the CQRS architecture.
// Handlers read directly through the database connection and return
// response projections, never domain aggregates.
package queries

import (
	"errors"
	"time"

	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/core/domain/model/kernel"
	"gelsin/internal/pkg/guard"
)

// ErrMyOrdersQueryIsNotConstructed is returned when a MyOrdersQuery
// bypassed its constructor.
var ErrMyOrdersQueryIsNotConstructed = errors.New(
	"MyOrdersQuery must be created via NewMyOrdersQuery constructor",
)

// MyOrdersQuery retrieves the orders visible to an actor. The projection is
// role-dependent: customers see their own orders, restaurant owners see
// orders against their restaurant, couriers see orders assigned to them,
// and admins see everything.
//
// Example:
//
//	query, err := NewMyOrdersQuery(actor)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	handler := NewMyOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type MyOrdersQuery struct {
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewMyOrdersQuery creates a query for the orders visible to the actor.
func NewMyOrdersQuery(actor account.Actor) (MyOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return MyOrdersQuery{}, err
	}

	return MyOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrMyOrdersQueryIsNotConstructed if validation fails.
func (q MyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrMyOrdersQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q MyOrdersQuery) Actor() account.Actor {
	return q.actor
}

// MyOrdersItemResponse is one snapshotted line of a visible order.
type MyOrdersItemResponse struct {
	MenuItemID int64
	Name       string
	Price      kernel.Money
	Qty        int
}

// MyOrdersQueryResponse is one visible order with its frozen lines.
// Prices and the total reflect the snapshot taken at placement, not the
// current catalog.
type MyOrdersQueryResponse struct {
	ID           int64
	CustomerID   int64
	RestaurantID int64
	Status       string
	AddressText  string
	Total        kernel.Money
	CreatedAt    time.Time
	Items        []MyOrdersItemResponse
}

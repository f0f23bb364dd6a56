package account

import (
	"errors"

	"gelsin/internal/pkg/errs"
	"gelsin/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the resolved identity attached to every engine operation: who is
// calling and in what role. The engine trusts it completely; credential
// validation happens at the transport boundary.
//
// For restaurant owners the access layer also resolves the identifier of
// their one owned restaurant, so ownership predicates on transitions never
// reach back into the catalog.
type Actor struct { //nolint:recvcheck //using for validation
	id           int64
	role         Role
	restaurantID *int64

	guard guard.ConstructorGuard
}

// NewActor creates an Actor for the given user identity and role.
func NewActor(id int64, role Role) (Actor, error) {
	if id <= 0 {
		return Actor{}, errs.NewValueIsRequiredError("actor id")
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// WithRestaurant returns a copy of the actor carrying the identifier of the
// restaurant the actor owns. Only meaningful for RoleRestaurant actors.
func (a Actor) WithRestaurant(restaurantID int64) Actor {
	a.restaurantID = &restaurantID
	return a
}

// ID returns the acting user's identifier.
func (a Actor) ID() int64 {
	return a.id
}

// Role returns the acting user's role.
func (a Actor) Role() Role {
	return a.role
}

// RestaurantID returns the identifier of the restaurant the actor owns,
// or nil when the actor owns none (or is not a restaurant owner).
func (a Actor) RestaurantID() *int64 {
	return a.restaurantID
}

// Validate ensures the Actor was created via NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

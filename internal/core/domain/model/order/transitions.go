package order

import (
	"slices"

	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/pkg/errs"
)

// Operation identifies one lifecycle transition an actor can request.
type Operation int

const (
	// OperationUnknown represents an invalid or undefined operation.
	OperationUnknown Operation = iota

	// OperationCancel withdraws an order before the restaurant accepts it.
	OperationCancel

	// OperationAccept takes the order on for preparation.
	OperationAccept

	// OperationReject declines the order.
	OperationReject

	// OperationPickup collects the order and assigns the courier.
	OperationPickup

	// OperationDeliver completes the delivery.
	OperationDeliver
)

// String returns the lower-case operation name used in error messages.
func (op Operation) String() string {
	switch op {
	case OperationCancel:
		return "cancel"
	case OperationAccept:
		return "accept"
	case OperationReject:
		return "reject"
	case OperationPickup:
		return "pickup"
	case OperationDeliver:
		return "deliver"
	default:
		return "unknown"
	}
}

// transition is one row of the lifecycle table: the role allowed to request
// the operation, an optional ownership predicate, the admissible source
// states, the target state, and an optional side effect.
//
// Apply evaluates the columns strictly in that order, so a wrong role is
// reported as forbidden before any order state is consulted, and an
// ownership failure masks the order entirely (reported as not found,
// never as forbidden) so cross-tenant probes cannot confirm existence.
type transition struct {
	role   account.Role
	owns   func(o *Order, actor account.Actor) bool
	from   []Status
	to     Status
	effect func(o *Order, actor account.Actor) error
}

func getTransitions() map[Operation]transition {
	return map[Operation]transition{
		OperationCancel: {
			role: account.RoleCustomer,
			owns: func(o *Order, actor account.Actor) bool {
				return o.customerID == actor.ID()
			},
			from: []Status{StatusCreated, StatusPaid},
			to:   StatusCancelled,
		},
		OperationAccept: {
			role: account.RoleRestaurant,
			owns: func(o *Order, actor account.Actor) bool {
				return actor.RestaurantID() != nil && *actor.RestaurantID() == o.restaurantID
			},
			from: []Status{StatusPaid},
			to:   StatusAccepted,
		},
		OperationReject: {
			role: account.RoleRestaurant,
			owns: func(o *Order, actor account.Actor) bool {
				return actor.RestaurantID() != nil && *actor.RestaurantID() == o.restaurantID
			},
			from: []Status{StatusPaid},
			to:   StatusRejected,
		},
		OperationPickup: {
			// Any courier may attempt pickup; the first to commit wins the
			// assignment and later couriers fail the effect or the state gate.
			role: account.RoleCourier,
			from: []Status{StatusAccepted},
			to:   StatusPickedUp,
			effect: func(o *Order, actor account.Actor) error {
				return o.delivery.assign(o.id, actor.ID())
			},
		},
		OperationDeliver: {
			role: account.RoleCourier,
			owns: func(o *Order, actor account.Actor) bool {
				return o.delivery.IsAssignedTo(actor.ID())
			},
			from: []Status{StatusPickedUp},
			to:   StatusDelivered,
		},
	}
}

// Apply executes one lifecycle transition on behalf of an actor. Checks run
// in a fixed order for every operation:
//
//  1. role        -> ForbiddenError
//  2. ownership   -> ObjectNotFoundError (masking, see transition)
//  3. source state -> InvalidStateError (never a silent no-op)
//  4. side effect -> operation-specific error (e.g. AlreadyAssignedError)
//
// On success the order's status advances to the transition's target state.
// Callers must persist the order within the same transaction that loaded
// it, so the precondition is re-validated against freshly loaded state.
func (o *Order) Apply(op Operation, actor account.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}

	t, ok := getTransitions()[op]
	if !ok {
		return errs.NewValueIsInvalidError("operation")
	}

	if actor.Role() != t.role {
		return errs.NewForbiddenError(op.String(), actor.Role().String())
	}

	if t.owns != nil && !t.owns(o, actor) {
		return errs.NewObjectNotFoundError("order", o.id)
	}

	if !slices.Contains(t.from, o.status) {
		return errs.NewInvalidStateError(op.String(), o.status.String())
	}

	if t.effect != nil {
		if err := t.effect(o, actor); err != nil {
			return err
		}
	}

	o.status = t.to
	return nil
}

// Cancel withdraws the order. Customer-only; the order must still be in
// CREATED or PAID. Cancelling twice fails the second time.
func (o *Order) Cancel(actor account.Actor) error {
	return o.Apply(OperationCancel, actor)
}

// Accept takes the order on. Restaurant-owner-only; the order must be PAID.
func (o *Order) Accept(actor account.Actor) error {
	return o.Apply(OperationAccept, actor)
}

// Reject declines the order. Restaurant-owner-only; the order must be PAID.
// REJECTED is terminal.
func (o *Order) Reject(actor account.Actor) error {
	return o.Apply(OperationReject, actor)
}

// Pickup collects the order and assigns the acting courier. The order must
// be ACCEPTED and the delivery unassigned or already the actor's.
func (o *Order) Pickup(actor account.Actor) error {
	return o.Apply(OperationPickup, actor)
}

// Deliver completes the delivery. Only the assigned courier may deliver,
// and only from PICKED_UP. DELIVERED is terminal.
func (o *Order) Deliver(actor account.Actor) error {
	return o.Apply(OperationDeliver, actor)
}

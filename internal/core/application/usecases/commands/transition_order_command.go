package commands

import (
	"errors"

	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/core/domain/model/order"
	"gelsin/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
	ErrOrderIDIsRequired  = errors.New("order id is required")
	ErrOperationIsInvalid = errors.New("operation is invalid")
)

// TransitionOrderCommand represents an actor's request to move an order
// through its lifecycle: cancel, accept, reject, pickup or deliver. One
// command type serves all five operations; the transition table on the
// order aggregate decides who may do what from which status.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	operation order.Operation
	actor     account.Actor

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to apply one lifecycle
// operation to an order on behalf of an actor.
func NewTransitionOrderCommand(
	orderID int64, operation order.Operation, actor account.Actor,
) (TransitionOrderCommand, error) {
	transitionCommand := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setOrderID(orderID),
		transitionCommand.setOperation(operation),
		transitionCommand.setActor(actor),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() int64 {
	return c.orderID
}

// Operation returns the requested lifecycle operation.
func (c TransitionOrderCommand) Operation() order.Operation {
	return c.operation
}

// Actor returns the acting user.
func (c TransitionOrderCommand) Actor() account.Actor {
	return c.actor
}

func (c *TransitionOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setOperation(operation order.Operation) error {
	switch operation {
	case order.OperationCancel, order.OperationAccept, order.OperationReject,
		order.OperationPickup, order.OperationDeliver:
		c.operation = operation
		return nil
	default:
		return ErrOperationIsInvalid
	}
}

func (c *TransitionOrderCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

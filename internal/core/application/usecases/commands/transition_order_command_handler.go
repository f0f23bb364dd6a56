package commands

import (
	"context"
	"errors"

	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/pkg/errs"
)

// TransitionOrderCommandHandler applies one lifecycle operation to an order.
// Loads the aggregate, lets the transition table authorize and advance it,
// and persists the result within a single transaction, so the precondition
// is always checked against freshly loaded state and two racing actors
// cannot both succeed.
type TransitionOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
}

// NewTransitionOrderCommandHandler creates a handler for lifecycle
// transitions. Requires an OrderingUoWFactory for transactional persistence.
func NewTransitionOrderCommandHandler(uowFactory OrderingUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command. For restaurant actors the owned
// restaurant is resolved inside the same transaction, so ownership checks
// on accept/reject see current catalog state. An owner without a restaurant
// fails the ownership predicate and observes the same not-found result as
// any other non-owner.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	actor := cmd.Actor()
	if actor.Role() == account.RoleRestaurant {
		restaurant, err := uow.RestaurantRepository().GetByOwner(ctx, actor.ID())
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			// No restaurant: the ownership predicate fails downstream.
		case err != nil:
			return err
		default:
			actor = actor.WithRestaurant(restaurant.ID())
		}
	}

	if err = aggregate.Apply(cmd.Operation(), actor); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

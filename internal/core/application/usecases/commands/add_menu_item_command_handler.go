package commands

import (
	"context"

	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/core/domain/model/catalog"
	"gelsin/internal/pkg/errs"
)

// AddMenuItemCommandHandler handles adding items to a restaurant's menu.
// Restaurant catalog entries are public, so a non-owner touching another
// restaurant's menu gets a plain forbidden result, not a masked one.
type AddMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewAddMenuItemCommandHandler creates a handler for menu management.
// Requires a CatalogUoWFactory for transactional persistence.
func NewAddMenuItemCommandHandler(uowFactory CatalogUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the identifier of the persisted
// menu item. The target restaurant must exist and belong to the actor.
func (h AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	actor := cmd.Actor()
	if actor.Role() != account.RoleRestaurant {
		return 0, errs.NewForbiddenError("add menu item", actor.Role().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()

	restaurant, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return 0, err
	}
	if restaurant.OwnerUserID() != actor.ID() {
		return 0, errs.NewForbiddenError("add menu item", actor.Role().String())
	}

	item, err := catalog.NewMenuItem(restaurant.ID(), cmd.Name(), cmd.Price())
	if err != nil {
		return 0, err
	}

	persisted, err := restaurantRepo.AddMenuItem(ctx, item)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return persisted.ID(), nil
}

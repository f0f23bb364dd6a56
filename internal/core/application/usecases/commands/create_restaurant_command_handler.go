package commands

import (
	"context"
	"errors"

	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/core/domain/model/catalog"
	"gelsin/internal/pkg/errs"
)

// ErrOwnerAlreadyHasRestaurant is returned when a second restaurant is
// registered for the same owner.
var ErrOwnerAlreadyHasRestaurant = errors.New("owner already has a restaurant")

// CreateRestaurantCommandHandler handles restaurant registration.
// Only restaurant-role users may register, and each owner at most once.
type CreateRestaurantCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant
// registration. Requires a CatalogUoWFactory for transactional persistence.
func NewCreateRestaurantCommandHandler(uowFactory CatalogUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the identifier of
// the persisted restaurant.
func (h CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	actor := cmd.Actor()
	if actor.Role() != account.RoleRestaurant {
		return 0, errs.NewForbiddenError("create restaurant", actor.Role().String())
	}

	restaurant, err := catalog.NewRestaurant(cmd.Name(), cmd.Address(), actor.ID())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()

	_, err = restaurantRepo.GetByOwner(ctx, actor.ID())
	switch {
	case err == nil:
		return 0, ErrOwnerAlreadyHasRestaurant
	case !errors.Is(err, errs.ErrObjectNotFound):
		return 0, err
	}

	persisted, err := restaurantRepo.Add(ctx, restaurant)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return persisted.ID(), nil
}

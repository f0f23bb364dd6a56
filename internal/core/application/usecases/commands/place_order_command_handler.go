package commands

import (
	"context"
	"errors"
	"fmt"

	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/core/domain/model/order"
	"gelsin/internal/core/ports"
	"gelsin/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Validates the restaurant and every requested line, snapshots prices,
// authorizes payment for the computed total and persists the order inside
// one transaction, so a failed step leaves no partial order behind.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, payments)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("Order %d placed and paid", orderID)
type PlaceOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	payments   ports.PaymentProvider
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderingUoWFactory for transactional persistence and a
// PaymentProvider to authorize the charge.
func NewPlaceOrderCommandHandler(
	uowFactory OrderingUoWFactory, payments ports.PaymentProvider,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
	}
}

// Handle processes the order placement command and returns the identifier
// of the persisted order. Only customers may place orders. The referenced
// restaurant must exist and be open, and every line must reference an
// active menu item of that restaurant; violations surface as validation
// errors without confirming anything about other tenants' catalogs.
// Payment is authorized against the snapshot total before the order is
// written, so a declined charge persists nothing.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	actor := cmd.Actor()
	if actor.Role() != account.RoleCustomer {
		return 0, errs.NewForbiddenError("place order", actor.Role().String())
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
	if !restaurant.IsOpen() {
		return 0, errs.NewValueIsInvalidError("restaurant is closed")
	}

	items := make([]*order.OrderItem, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		menuItem, err := restaurantRepo.GetMenuItem(ctx, line.MenuItemID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			// An unknown menu item id is a validation failure of the request,
			// not a lookup miss of the order surface.
			return 0, errs.NewValueIsInvalidError(fmt.Sprintf("menu item %d", line.MenuItemID))
		}
		if err != nil {
			return 0, err
		}
		if menuItem.RestaurantID() != cmd.RestaurantID() || !menuItem.IsActive() {
			return 0, errs.NewValueIsInvalidError(fmt.Sprintf("menu item %d", line.MenuItemID))
		}

		item, err := order.NewOrderItem(menuItem, line.Qty)
		if err != nil {
			return 0, err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(actor.ID(), cmd.RestaurantID(), cmd.AddressText(), items)
	if err != nil {
		return 0, err
	}

	if _, err = h.payments.Authorize(ctx, aggregate.Total(), cmd.Instrument()); err != nil {
		return 0, err
	}

	persisted, err := uow.OrderRepository().Add(ctx, aggregate)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return persisted.ID(), nil
}

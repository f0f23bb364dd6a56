package commands

import (
	"errors"

	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/core/domain/model/order"
	"gelsin/internal/core/ports"
	"gelsin/internal/pkg/errs"
	"gelsin/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrRestaurantIDIsRequired = errors.New("restaurant id is required")
	ErrAddressIsRequired      = errors.New("address is required")
	ErrOrderHasNoLines        = errors.New("order must contain at least one line")
	ErrMenuItemIDIsRequired   = errors.New("menu item id is required")
)

// OrderLine is one requested menu item with its quantity. Quantity bounds
// are enforced by the order aggregate when the line is snapshotted.
type OrderLine struct {
	MenuItemID int64
	Qty        int
}

// PlaceOrderCommand represents a customer's request to place an order:
// the target restaurant, the delivery address, the requested lines and
// the payment instrument to authorize against the computed total.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(actor, 4, "Kebap St 1",
//	    []OrderLine{{MenuItemID: 7, Qty: 2}},
//	    ports.PaymentInstrument{MockSuccess: true})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, payments)
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	actor        account.Actor
	restaurantID int64
	addressText  string
	lines        []OrderLine
	instrument   ports.PaymentInstrument

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the actor is constructed, the restaurant id is set, the
// address is not empty and at least one line with a menu item id is present.
func NewPlaceOrderCommand(
	actor account.Actor,
	restaurantID int64,
	addressText string,
	lines []OrderLine,
	instrument ports.PaymentInstrument,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		instrument: instrument,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setActor(actor),
		placeCommand.setRestaurantID(restaurantID),
		placeCommand.setAddressText(addressText),
		placeCommand.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Actor returns the customer placing the order.
func (c PlaceOrderCommand) Actor() account.Actor {
	return c.actor
}

// RestaurantID returns the identifier of the target restaurant.
func (c PlaceOrderCommand) RestaurantID() int64 {
	return c.restaurantID
}

// AddressText returns the free-form delivery address.
func (c PlaceOrderCommand) AddressText() string {
	return c.addressText
}

// Lines returns the requested order lines.
func (c PlaceOrderCommand) Lines() []OrderLine {
	return c.lines
}

// Instrument returns the payment instrument to authorize.
func (c PlaceOrderCommand) Instrument() ports.PaymentInstrument {
	return c.instrument
}

func (c *PlaceOrderCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(restaurantID int64) error {
	if restaurantID <= 0 {
		return ErrRestaurantIDIsRequired
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *PlaceOrderCommand) setAddressText(addressText string) error {
	if addressText == "" {
		return ErrAddressIsRequired
	}

	c.addressText = addressText
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}
	for _, line := range lines {
		if line.MenuItemID <= 0 {
			return ErrMenuItemIDIsRequired
		}
		if line.Qty < order.QtyMin || line.Qty > order.QtyMax {
			return errs.NewValueIsOutOfRangeError("qty", line.Qty, order.QtyMin, order.QtyMax)
		}
	}

	c.lines = append([]OrderLine(nil), lines...)
	return nil
}

package commands

import (
	"errors"

	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/core/domain/model/kernel"
	"gelsin/internal/pkg/guard"
)

// ErrAddMenuItemCommandIsNotConstructed is returned when an
// AddMenuItemCommand bypassed its constructor.
var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand represents an owner's request to add a priced item
// to their restaurant's menu.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	actor        account.Actor
	restaurantID int64
	name         string
	price        kernel.Money

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
// Price must be a constructed non-negative Money value.
func NewAddMenuItemCommand(
	actor account.Actor, restaurantID int64, name string, price kernel.Money,
) (AddMenuItemCommand, error) {
	addCommand := AddMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addCommand.setActor(actor),
		addCommand.setRestaurantID(restaurantID),
		addCommand.setName(name),
		addCommand.setPrice(price),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return addCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// Actor returns the owner adding the item.
func (c AddMenuItemCommand) Actor() account.Actor {
	return c.actor
}

// RestaurantID returns the identifier of the target restaurant.
func (c AddMenuItemCommand) RestaurantID() int64 {
	return c.restaurantID
}

// Name returns the menu item's display name.
func (c AddMenuItemCommand) Name() string {
	return c.name
}

// Price returns the menu item's price.
func (c AddMenuItemCommand) Price() kernel.Money {
	return c.price
}

func (c *AddMenuItemCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AddMenuItemCommand) setRestaurantID(restaurantID int64) error {
	if restaurantID <= 0 {
		return ErrRestaurantIDIsRequired
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddMenuItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

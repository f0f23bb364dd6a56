package catalog

import (
	"errors"

	"gelsin/internal/core/domain/model/kernel"
	"gelsin/internal/pkg/errs"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created
	// through NewMenuItem or RestoreMenuItem.
	ErrMenuItemIsNotConstructed = errors.New(
		"MenuItem must be created via NewMenuItem or RestoreMenuItem constructor")

	// ErrMenuItemNameIsRequired is returned when attempting to create a menu
	// item without a name.
	ErrMenuItemNameIsRequired = errs.NewValueIsRequiredError("name")
)

// MenuItem is a priced catalog entry belonging to one restaurant. Orders
// reference menu items by identifier but copy name and price into their own
// line items at creation time, so later catalog edits never change
// historical orders.
type MenuItem struct {
	id            int64
	restaurantID  int64
	name          string
	price         kernel.Money
	isActive      bool
	isConstructed bool
}

// NewMenuItem creates a new active MenuItem pending persistence.
func NewMenuItem(restaurantID int64, name string, price kernel.Money) (*MenuItem, error) {
	item := &MenuItem{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setRestaurantID(restaurantID),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem reconstructs a persisted MenuItem from storage.
func RestoreMenuItem(id, restaurantID int64, name string, price kernel.Money, isActive bool) (*MenuItem, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	item, err := NewMenuItem(restaurantID, name, price)
	if err != nil {
		return nil, err
	}

	item.id = id
	item.isActive = isActive
	return item, nil
}

// Validate ensures the MenuItem instance was properly constructed.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or zero before persistence.
func (m *MenuItem) ID() int64 {
	return m.id
}

// RestaurantID returns the identifier of the owning restaurant.
func (m *MenuItem) RestaurantID() int64 {
	return m.restaurantID
}

// Name returns the menu item's display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the menu item's current price.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// IsActive reports whether the item can currently be ordered.
func (m *MenuItem) IsActive() bool {
	return m.isActive
}

func (m *MenuItem) setRestaurantID(restaurantID int64) error {
	if restaurantID <= 0 {
		return errs.NewValueIsRequiredError("restaurantID")
	}
	m.restaurantID = restaurantID
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return ErrMenuItemNameIsRequired
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}

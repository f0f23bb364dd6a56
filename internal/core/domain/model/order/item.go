package order

import (
	"errors"

	"gelsin/internal/core/domain/model/catalog"
	"gelsin/internal/core/domain/model/kernel"
	"gelsin/internal/pkg/errs"
)

const (
	// QtyMin is the minimum quantity for one order line.
	QtyMin = 1
	// QtyMax is the maximum quantity for one order line.
	QtyMax = 50
)

// ErrItemIsNotConstructed is returned when an OrderItem was not created
// through NewOrderItem or RestoreOrderItem.
var ErrItemIsNotConstructed = errors.New(
	"OrderItem must be created via NewOrderItem or RestoreOrderItem constructor")

// OrderItem is an immutable snapshot of one purchased line. Name and price
// are copied from the menu item at order-creation time and never change
// thereafter, decoupling historical orders from catalog edits. The menu
// item identifier is kept as a reference, not an ownership link.
type OrderItem struct {
	id            int64
	menuItemID    int64
	nameSnapshot  string
	priceSnapshot kernel.Money
	qty           int
	isConstructed bool
}

// NewOrderItem snapshots a menu item into an order line. Name and price are
// copied at this instant; qty must lie within [QtyMin, QtyMax].
func NewOrderItem(menuItem *catalog.MenuItem, qty int) (*OrderItem, error) {
	if err := menuItem.Validate(); err != nil {
		return nil, err
	}
	if qty < QtyMin || qty > QtyMax {
		return nil, errs.NewValueIsOutOfRangeError("qty", qty, QtyMin, QtyMax)
	}

	return &OrderItem{
		menuItemID:    menuItem.ID(),
		nameSnapshot:  menuItem.Name(),
		priceSnapshot: menuItem.Price(),
		qty:           qty,
		isConstructed: true,
	}, nil
}

// RestoreOrderItem reconstructs a persisted OrderItem from storage.
func RestoreOrderItem(id, menuItemID int64, nameSnapshot string, priceSnapshot kernel.Money, qty int) (*OrderItem, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if menuItemID <= 0 {
		return nil, errs.NewValueIsRequiredError("menuItemID")
	}
	if nameSnapshot == "" {
		return nil, errs.NewValueIsRequiredError("nameSnapshot")
	}
	if err := priceSnapshot.Validate(); err != nil {
		return nil, err
	}
	if qty < QtyMin || qty > QtyMax {
		return nil, errs.NewValueIsOutOfRangeError("qty", qty, QtyMin, QtyMax)
	}

	return &OrderItem{
		id:            id,
		menuItemID:    menuItemID,
		nameSnapshot:  nameSnapshot,
		priceSnapshot: priceSnapshot,
		qty:           qty,
		isConstructed: true,
	}, nil
}

// Validate ensures the OrderItem instance was properly constructed.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or zero before persistence.
func (i *OrderItem) ID() int64 {
	return i.id
}

// MenuItemID returns the identifier of the referenced menu item.
func (i *OrderItem) MenuItemID() int64 {
	return i.menuItemID
}

// NameSnapshot returns the menu item name frozen at order creation.
func (i *OrderItem) NameSnapshot() string {
	return i.nameSnapshot
}

// PriceSnapshot returns the unit price frozen at order creation.
func (i *OrderItem) PriceSnapshot() kernel.Money {
	return i.priceSnapshot
}

// Qty returns the ordered quantity.
func (i *OrderItem) Qty() int {
	return i.qty
}

// Subtotal returns priceSnapshot multiplied by qty.
func (i *OrderItem) Subtotal() kernel.Money {
	return i.priceSnapshot.MulInt(i.qty)
}

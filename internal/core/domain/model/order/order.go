package order

import (
	"errors"
	"time"

	"gelsin/internal/core/domain/model/kernel"
	"gelsin/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoItems is returned when attempting to create an order with
	// an empty line item list.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order must contain at least 1 item")

	// ErrAddressIsRequired is returned when attempting to create an order
	// without a delivery address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("addressText")
)

// Order is the aggregate root of the lifecycle engine. It exclusively owns
// its line item snapshots and its one Delivery record; the restaurant and
// the customer are referenced by identifier only.
//
// Invariants:
//   - total always equals the sum of priceSnapshot x qty over the items,
//     fixed at creation; it is never recomputed, even if catalog prices
//     change later
//   - restaurantID is immutable after creation
//   - status only moves forward along the transition table; terminal
//     states (REJECTED, CANCELLED, DELIVERED) have no exit
//   - the delivery's courier is set exactly once, at pickup
//
// Orders are never physically deleted: terminal states end the lifecycle,
// the rows stay.
type Order struct {
	// id is the store-assigned identifier; zero until persisted.
	// Identifiers are monotonically assigned, so descending id order is
	// creation order.
	id int64

	// customerID references the customer who placed the order.
	customerID int64

	// restaurantID references the restaurant the order is against.
	restaurantID int64

	// addressText is the free-form delivery address.
	addressText string

	// status is the current lifecycle state.
	status Status

	// total is the frozen sum of item subtotals.
	total kernel.Money

	// createdAt is set once at creation.
	createdAt time.Time

	// items are the immutable line snapshots, owned by the order.
	items []*OrderItem

	// delivery is the courier assignment record, owned by the order.
	delivery *Delivery

	// isConstructed ensures the order was created via a constructor.
	isConstructed bool
}

// NewOrder creates an order in PAID status from already-snapshotted line
// items, together with its unassigned Delivery. The total is computed here,
// once, from the snapshots; payment must have been authorized by the caller
// before constructing the order.
func NewOrder(customerID, restaurantID int64, addressText string, items []*OrderItem) (*Order, error) {
	o := &Order{
		status:        StatusPaid,
		createdAt:     time.Now().UTC(),
		delivery:      NewDelivery(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setAddressText(addressText),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.total = computeTotal(o.items)
	return o, nil
}

// RestoreOrder reconstructs a persisted Order from storage. The stored
// total is trusted as-is; it is the frozen creation-time value.
func RestoreOrder(
	id, customerID, restaurantID int64,
	addressText string,
	status Status,
	total kernel.Money,
	createdAt time.Time,
	items []*OrderItem,
	delivery *Delivery,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := total.Validate(); err != nil {
		return nil, err
	}
	if err := delivery.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		status:        status,
		createdAt:     createdAt,
		delivery:      delivery,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setAddressText(addressText),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.id = id
	o.total = total
	return o, nil
}

// computeTotal sums priceSnapshot x qty over the given items.
func computeTotal(items []*OrderItem) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the store-assigned identifier, or zero before persistence.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// RestaurantID returns the identifier of the restaurant the order is against.
func (o *Order) RestaurantID() int64 {
	return o.restaurantID
}

// AddressText returns the delivery address.
func (o *Order) AddressText() string {
	return o.addressText
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the frozen creation-time total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns the order's line item snapshots.
func (o *Order) Items() []*OrderItem {
	return o.items
}

// Delivery returns the order's courier assignment record.
func (o *Order) Delivery() *Delivery {
	return o.delivery
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsRequiredError("customerID")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID int64) error {
	if restaurantID <= 0 {
		return errs.NewValueIsRequiredError("restaurantID")
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setAddressText(addressText string) error {
	if addressText == "" {
		return ErrAddressIsRequired
	}
	o.addressText = addressText
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

package order

import (
	"errors"

	"gelsin/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
// through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New(
	"Delivery must be created via NewDelivery or RestoreDelivery constructor")

// Delivery is the courier assignment record for exactly one order. It is
// created unassigned together with the order and its courier is set exactly
// once, at pickup. Once set, the courier never changes: a different courier
// attempting to take over is rejected.
type Delivery struct {
	id            int64
	courierID     *int64
	isConstructed bool
}

// NewDelivery creates an unassigned Delivery pending persistence.
func NewDelivery() *Delivery {
	return &Delivery{isConstructed: true}
}

// RestoreDelivery reconstructs a persisted Delivery from storage.
func RestoreDelivery(id int64, courierID *int64) (*Delivery, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if courierID != nil && *courierID <= 0 {
		return nil, errs.NewValueIsRequiredError("courierID")
	}

	return &Delivery{
		id:            id,
		courierID:     courierID,
		isConstructed: true,
	}, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or zero before persistence.
func (d *Delivery) ID() int64 {
	return d.id
}

// CourierID returns the assigned courier's identifier, or nil while the
// delivery is unassigned.
func (d *Delivery) CourierID() *int64 {
	return d.courierID
}

// IsAssignedTo reports whether the delivery is assigned to the given courier.
func (d *Delivery) IsAssignedTo(courierID int64) bool {
	return d.courierID != nil && *d.courierID == courierID
}

// assign records the courier taking the delivery. Assigning the same
// courier again is a no-op; a different courier is rejected.
func (d *Delivery) assign(orderID, courierID int64) error {
	if d.courierID != nil && *d.courierID != courierID {
		return errs.NewAlreadyAssignedError(orderID)
	}
	d.courierID = &courierID
	return nil
}

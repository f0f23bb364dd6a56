package catalog

import (
	"errors"

	"gelsin/internal/pkg/errs"
)

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant was not
	// created through NewRestaurant or RestoreRestaurant.
	ErrRestaurantIsNotConstructed = errors.New(
		"Restaurant must be created via NewRestaurant or RestoreRestaurant constructor")

	// ErrRestaurantNameIsRequired is returned when attempting to create a
	// restaurant without a name.
	ErrRestaurantNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrRestaurantAddressIsRequired is returned when attempting to create a
	// restaurant without an address.
	ErrRestaurantAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// Restaurant is a catalog entity owned by exactly one restaurant-role user.
// The order lifecycle engine only ever reads restaurants: it checks
// existence and openness when an order is placed, and resolves ownership
// when a transition requires the acting owner.
type Restaurant struct {
	id            int64
	name          string
	address       string
	isOpen        bool
	ownerUserID   int64
	isConstructed bool
}

// NewRestaurant creates a new open Restaurant pending persistence.
func NewRestaurant(name, address string, ownerUserID int64) (*Restaurant, error) {
	r := &Restaurant{
		isOpen:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setName(name),
		r.setAddress(address),
		r.setOwner(ownerUserID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant reconstructs a persisted Restaurant from storage.
func RestoreRestaurant(id int64, name, address string, isOpen bool, ownerUserID int64) (*Restaurant, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	r, err := NewRestaurant(name, address, ownerUserID)
	if err != nil {
		return nil, err
	}

	r.id = id
	r.isOpen = isOpen
	return r, nil
}

// Validate ensures the Restaurant instance was properly constructed.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or zero before persistence.
func (r *Restaurant) ID() int64 {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the restaurant's street address.
func (r *Restaurant) Address() string {
	return r.address
}

// IsOpen reports whether the restaurant currently accepts orders.
func (r *Restaurant) IsOpen() bool {
	return r.isOpen
}

// OwnerUserID returns the identifier of the owning user.
func (r *Restaurant) OwnerUserID() int64 {
	return r.ownerUserID
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if address == "" {
		return ErrRestaurantAddressIsRequired
	}
	r.address = address
	return nil
}

func (r *Restaurant) setOwner(ownerUserID int64) error {
	if ownerUserID <= 0 {
		return errs.NewValueIsRequiredError("ownerUserID")
	}
	r.ownerUserID = ownerUserID
	return nil
}

package account

import (
	"fmt"

	"gelsin/internal/pkg/errs"
)

// Role identifies what kind of actor a user is. Every engine operation is
// gated on the acting user's role before any order state is consulted.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer places and cancels orders.
	RoleCustomer

	// RoleRestaurant owns one restaurant and accepts or rejects its orders.
	RoleRestaurant

	// RoleCourier picks up accepted orders and delivers them.
	RoleCourier

	// RoleAdmin has read access to every order.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "UNKNOWN",
		RoleCustomer:   "CUSTOMER",
		RoleRestaurant: "RESTAURANT",
		RoleCourier:    "COURIER",
		RoleAdmin:      "ADMIN",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer:   "CUSTOMER",
		RoleRestaurant: "RESTAURANT",
		RoleCourier:    "COURIER",
		RoleAdmin:      "ADMIN",
	}
}

// RoleFromString parses the canonical upper-case role name used on the wire
// and in storage. Returns an error for unrecognized names.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: CUSTOMER, RESTAURANT, COURIER, ADMIN.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the canonical upper-case name of the role.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

package order

import (
	"fmt"

	"gelsin/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	CREATED ──┐
//	          ├──> CANCELLED
//	PAID ─────┘
//	  │
//	  ├──> REJECTED
//	  └──> ACCEPTED ──> PICKED_UP ──> DELIVERED
//
// Orders are born in PAID: the payment capability must authorize before an
// order is ever persisted, so no CREATED order is externally observable.
// CREATED stays in the enum as a placeholder for a deferred-payment flow.
//
// REJECTED, CANCELLED, and DELIVERED are terminal. Status never moves
// backward and no transition can be applied twice; the admissible source
// states for each operation live in the central transition table.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is reserved for a future deferred-payment flow.
	// No order reaches storage in this status today.
	StatusCreated

	// StatusPaid is the initial status of every persisted order.
	StatusPaid

	// StatusAccepted means the restaurant owner took the order on.
	StatusAccepted

	// StatusRejected means the restaurant owner declined the order. Terminal.
	StatusRejected

	// StatusPickedUp means a courier collected the order and is assigned to it.
	StatusPickedUp

	// StatusDelivered means the assigned courier completed the delivery. Terminal.
	StatusDelivered

	// StatusCancelled means the customer withdrew the order before acceptance. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusCreated:   "CREATED",
		StatusPaid:      "PAID",
		StatusAccepted:  "ACCEPTED",
		StatusRejected:  "REJECTED",
		StatusPickedUp:  "PICKED_UP",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:   "CREATED",
		StatusPaid:      "PAID",
		StatusAccepted:  "ACCEPTED",
		StatusRejected:  "REJECTED",
		StatusPickedUp:  "PICKED_UP",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
	}
}

// StatusFromString parses the canonical upper-case status name used on the
// wire and in storage. Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical upper-case name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusDelivered || s == StatusCancelled
}

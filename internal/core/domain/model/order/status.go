package order

import (
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Accepted ──> Preparing ──> ReadyForPickup ──> OutForDelivery ──> Delivered
//	   │            │            │
//	   └────────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order.
	Pending

	// Accepted means the vendor took the order.
	Accepted

	// Preparing means the kitchen is working on the order.
	Preparing

	// ReadyForPickup means the order waits for the delivery partner.
	ReadyForPickup

	// OutForDelivery means the delivery partner picked the order up.
	OutForDelivery

	// Delivered is terminal. Reaching it marks the payment as paid.
	Delivered

	// Cancelled is terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Accepted:       "Accepted",
		Preparing:      "Preparing",
		ReadyForPickup: "ReadyForPickup",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// ParseStatus converts the textual form used by the API and storage.
func ParseStatus(s string) (Status, error) {
	for st, str := range getStatusStrings() {
		if st != Unknown && strings.EqualFold(str, s) {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further status mutation is permitted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

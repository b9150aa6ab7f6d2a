package order

import (
	"fmt"

	"coldroute/internal/pkg/errs"
)

// Status represents the lifecycle state of a customer order.
// It implements a state machine with defined transitions:
//
//	Draft ──> Confirmed ──> Fulfilled
//	  │           │
//	  └───────────┴──> Cancelled
//
// Orders in Draft or Confirmed status are "active": their line items still
// reserve inventory. Fulfilled and Cancelled orders hold no reservation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status when an order is first created.
	// Draft orders can be edited, confirmed, or cancelled.
	Draft

	// Confirmed indicates the customer has committed to the order.
	// Line items of confirmed orders reserve warehouse inventory.
	Confirmed

	// Fulfilled indicates the order has been delivered.
	// This is a final state; the reservation is released.
	Fulfilled

	// Cancelled indicates the order was abandoned before fulfillment.
	// This is a final state; the reservation is released.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Confirmed: "Confirmed",
		Fulfilled: "Fulfilled",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Confirmed: "Confirmed",
		Fulfilled: "Fulfilled",
		Cancelled: "Cancelled",
	}
}

// ActiveStatuses returns the statuses whose line items reserve inventory.
func ActiveStatuses() []Status {
	return []Status{Draft, Confirmed}
}

// StatusFromString parses a status persisted as text.
// Returns an error for unrecognized values, including "Unknown".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Draft, Confirmed, Fulfilled, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether line items of an order in this status still
// reserve inventory.
func (s Status) IsActive() bool {
	return s == Draft || s == Confirmed
}

// Confirm returns the status after confirming the order.
// Only Draft orders can be confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Draft {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status transition",
			fmt.Errorf("%s is not a valid status to confirm", s))
	}
	return Confirmed, nil
}

// Fulfill returns the status after fulfilling the order.
// Only Confirmed orders can be fulfilled.
func (s Status) Fulfill() (Status, error) {
	if s != Confirmed {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status transition",
			fmt.Errorf("%s is not a valid status to fulfill", s))
	}
	return Fulfilled, nil
}

// Cancel returns the status after cancelling the order.
// Draft and Confirmed orders can be cancelled; final states cannot.
func (s Status) Cancel() (Status, error) {
	if !s.IsActive() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status transition",
			fmt.Errorf("%s is not a valid status to cancel", s))
	}
	return Cancelled, nil
}

package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a fixed linear progression and a side
// exit to Cancelled:
//
//	Received ──> InPreparation ──> Ready ──> EnRoute ──> Delivered
//	    │              │             │          │
//	    └──────────────┴─────────────┴──────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no further transitions happen from
// either of them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status when an order is first placed.
	Received

	// InPreparation indicates the kitchen is working on the order.
	InPreparation

	// Ready indicates the order is prepared and waiting for pickup.
	Ready

	// EnRoute indicates the order left the restaurant for delivery.
	EnRoute

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled with a reason. Terminal,
	// reachable from every status except Delivered.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Received:      "Received",
		InPreparation: "InPreparation",
		Ready:         "Ready",
		EnRoute:       "EnRoute",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:      "Received",
		InPreparation: "InPreparation",
		Ready:         "Ready",
		EnRoute:       "EnRoute",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Next returns the successor on the fixed progression.
// Terminal statuses return themselves; the progression never skips a state.
// Unknown also returns itself, as it has no defined successor.
func (s Status) Next() Status {
	switch s {
	case Received:
		return InPreparation
	case InPreparation:
		return Ready
	case Ready:
		return EnRoute
	case EnRoute:
		return Delivered
	default:
		return s
	}
}

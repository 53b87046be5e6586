package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the network workflow.
//
// State transitions:
//
//	PendingPickup ──┬──> PickedUp ──> InTransit ──> AtAgency ──> Delivered
//	                │                     ^
//	                └─────────────────────┘
//	       (route-sheet dispatch skips the pickup scan)
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingPickup is the initial status: the order is registered and
	// waiting to be batched onto a route sheet or route.
	PendingPickup

	// PickedUp indicates a carrier collected the package from the sender.
	PickedUp

	// InTransit indicates the package is moving toward the destination zone.
	InTransit

	// AtAgency indicates the package arrived at the destination agency and
	// awaits pickup or last-mile delivery.
	AtAgency

	// Delivered indicates the package reached the recipient.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns the string representation for every Status value,
// including Unknown, to support display of invalid data.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		PendingPickup: "PendingPickup",
		PickedUp:      "PickedUp",
		InTransit:     "InTransit",
		AtAgency:      "AtAgency",
		Delivered:     "Delivered",
	}
}

// getAllowedTransitions returns, per status, the set of statuses an order may
// move to. PendingPickup may jump straight to InTransit: route-sheet dispatch
// assigns a carrier and moves the whole batch without an individual pickup scan.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		PendingPickup: {PickedUp, InTransit},
		PickedUp:      {InTransit},
		InTransit:     {AtAgency},
		AtAgency:      {Delivered},
		Delivered:     {},
	}
}

// StatusFromString parses the representation produced by String.
// Unknown is not accepted as an input.
func StatusFromString(value string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return s == Delivered
}

// CanTransitionTo reports whether moving from s to next is an allowed
// lifecycle transition.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs the transition from s to next.
// Returns the new status, or an error when the move is not allowed.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot transition from %s to %s", s.String(), next.String()),
		)
	}

	return next, nil
}

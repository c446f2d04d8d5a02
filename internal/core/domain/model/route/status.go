package route

import (
	"fmt"

	"transport/internal/pkg/errs"
)

// Status represents the lifecycle state of a route.
//
// State transitions:
//
//	AWAITING_DISPATCH ──> IN_PROGRESS ──> COMPLETED
//
// There are no other edges. IN_PROGRESS is entered exactly once, when a
// carrier is bound; COMPLETED is terminal. The transition table lives in
// CanTransition so illegal requests fail in one place instead of scattered
// conditionals.
type Status int

const (
	// StatusUnknown is the invalid zero value.
	StatusUnknown Status = iota

	// StatusAwaitingDispatch is the initial state: the route exists but no
	// carrier is bound. Only routes in this state accept basic-info edits.
	StatusAwaitingDispatch

	// StatusInProgress means a carrier is bound and the transport is underway.
	StatusInProgress

	// StatusCompleted is the terminal state. The bound carrier has been
	// released and no further changes are accepted.
	StatusCompleted
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusAwaitingDispatch: "AWAITING_DISPATCH",
		StatusInProgress:       "IN_PROGRESS",
		StatusCompleted:        "COMPLETED",
	}
}

// StatusFromString parses the wire form of a route status.
func StatusFromString(s string) (Status, error) {
	for st, str := range statusStrings() {
		if str == s {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("route status",
		fmt.Errorf("%q is not a valid route status", s))
}

// String returns the wire form of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate reports whether the status belongs to the closed set.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("route status",
			fmt.Errorf("%d is not a valid route status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions exist from this status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// CanTransition is the single transition table for route status updates.
// Staying in the current status is allowed (a date-only update), the forward
// edge IN_PROGRESS -> COMPLETED is allowed, and everything else is rejected.
// The edge AWAITING_DISPATCH -> IN_PROGRESS is deliberately absent here:
// dispatch is the only way into IN_PROGRESS and it goes through
// Route.AssignCarrier, never through a plain status update.
func (s Status) CanTransition(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return errs.NewInvalidTransitionError("route has been completed")
	}

	if target == s {
		return nil
	}
	if s == StatusInProgress && target == StatusCompleted {
		return nil
	}

	return errs.NewInvalidTransitionErrorWithCause("route status",
		fmt.Errorf("%s can not transition to %s", s, target))
}

// Dispatch returns the status after binding a carrier.
// Only AWAITING_DISPATCH routes can be dispatched.
func (s Status) Dispatch() (Status, error) {
	if s != StatusAwaitingDispatch {
		return StatusUnknown, errs.NewInvalidTransitionErrorWithCause("route status",
			fmt.Errorf("%s can not be dispatched", s))
	}
	return StatusInProgress, nil
}

// Complete returns the terminal status.
// Only IN_PROGRESS routes can complete.
func (s Status) Complete() (Status, error) {
	if s != StatusInProgress {
		return StatusUnknown, errs.NewInvalidTransitionErrorWithCause("route status",
			fmt.Errorf("%s can not be completed", s))
	}
	return StatusCompleted, nil
}

package carrier

import (
	"fmt"

	"transport/internal/pkg/errs"
)

// Status represents carrier availability.
//
// State transitions:
//
//	AVAILABLE ──> BUSY       (dispatched onto a route)
//	BUSY      ──> AVAILABLE  (the route completes, or an explicit release)
//
// A BUSY carrier accepts no modification other than the release back to
// AVAILABLE; the guard for that rule lives in Carrier.Apply.
type Status int

const (
	// StatusUnknown is the invalid zero value.
	StatusUnknown Status = iota

	// StatusAvailable means the carrier can be dispatched onto a route.
	StatusAvailable

	// StatusBusy means the carrier is bound to an in-progress route.
	StatusBusy
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusAvailable: "AVAILABLE",
		StatusBusy:      "BUSY",
	}
}

// StatusFromString parses the wire form of a carrier status.
func StatusFromString(s string) (Status, error) {
	for st, str := range statusStrings() {
		if str == s {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("carrier status",
		fmt.Errorf("%q is not a valid carrier status", s))
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
		return errs.NewValueIsInvalidErrorWithCause("carrier status",
			fmt.Errorf("%d is not a valid carrier status", s))
	}
	return nil
}

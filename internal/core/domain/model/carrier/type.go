package carrier

import (
	"fmt"

	"transport/internal/pkg/errs"
)

// Type classifies the cargo capability of a carrier vehicle. A route names the
// Type it requires and only a carrier of exactly that Type may be dispatched
// onto it.
type Type int

const (
	// TypeUnknown is the invalid zero value.
	TypeUnknown Type = iota

	// TypeMini is a small van for light cargo.
	TypeMini

	// TypeBox is a box truck for general palletized cargo.
	TypeBox

	// TypeFlat is a flatbed for oversized loads.
	TypeFlat

	// TypeRefrigerated is a temperature-controlled truck.
	TypeRefrigerated

	// TypeTanker is a tank truck for liquid cargo.
	TypeTanker
)

func typeStrings() map[Type]string {
	return map[Type]string{
		TypeMini:         "MINI",
		TypeBox:          "BOX",
		TypeFlat:         "FLAT",
		TypeRefrigerated: "REFRIGERATED",
		TypeTanker:       "TANKER",
	}
}

// TypeFromString parses the wire form of a carrier type.
func TypeFromString(s string) (Type, error) {
	for t, str := range typeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("carrier type",
		fmt.Errorf("%q is not a valid carrier type", s))
}

// String returns the wire form of the type, or "UNKNOWN" for invalid values.
func (t Type) String() string {
	if s, ok := typeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate reports whether the type belongs to the closed set.
func (t Type) Validate() error {
	if _, ok := typeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("carrier type",
			fmt.Errorf("%d is not a valid carrier type", t))
	}
	return nil
}

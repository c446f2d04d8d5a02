// Package guard implements the constructor guard pattern. Embedding a
// ConstructorGuard in a struct makes its zero value detectably invalid, so
// entities and commands can insist on being built through their constructors.
package guard

import "errors"

// ErrIsNotConstructed is returned by Validate when no custom error is supplied
// and the guarded value was not created through its constructor.
var ErrIsNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as properly constructed.
// The zero value is invalid; NewConstructorGuard produces a valid one.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// Otherwise it returns notConstructed, or ErrIsNotConstructed when
// notConstructed is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.constructed {
		return nil
	}
	if notConstructed == nil {
		return ErrIsNotConstructed
	}
	return notConstructed
}

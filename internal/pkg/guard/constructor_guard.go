// Package guard implements the constructor-guard pattern used by domain objects
// to detect zero-value instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. Embedding a ConstructorGuard in a
// struct makes a zero-value instance distinguishable from a constructed one.
//
// Example:
//
//	type Place struct {
//	    city     string
//	    province string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewPlace(city, province string) (Place, error) {
//	    // validation...
//	    return Place{city: city, province: province, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Place) Validate() error {
//	    return p.guard.Validate(ErrPlaceIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
// Call it in the constructor of every guarded domain object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object went through its constructor.
// Returns validationError for zero-value instances, or ErrDefaultConstructorGuard
// when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

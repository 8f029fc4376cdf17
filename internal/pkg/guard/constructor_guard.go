// Package guard provides a construction check for domain objects.
// Embedding a ConstructorGuard in a struct makes it possible to distinguish
// instances created through a designated constructor from zero values, so that
// domain invariants established by the constructor cannot be bypassed.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate
// when a nil error is passed as the validation error. This ensures that
// validation always fails with a meaningful message even if no specific
// error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// The zero value is "not constructed" and fails Validate; constructors set the
// internal flag by embedding the result of NewConstructorGuard.
//
// Example usage:
//
//	type Vehicle struct {
//	    plate string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewVehicle(plate string) (Vehicle, error) {
//	    if plate == "" {
//	        return Vehicle{}, errors.New("plate is required")
//	    }
//	    return Vehicle{plate: plate, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (v Vehicle) Validate() error {
//	    return v.guard.Validate(ErrVehicleIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it only from the object's designated constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created via its constructor.
// Returns nil for constructed objects. For zero values it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

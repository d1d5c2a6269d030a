package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard
// is checked and no specific error was supplied by the caller.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. Embedding a guard in a struct makes
// zero-value instances detectable: the internal flag is only set when the
// object went through its constructor.
//
// Example usage:
//
//	var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem")
//
//	type MenuItem struct {
//	    description string
//	    price       Money
//	    guard       guard.ConstructorGuard
//	}
//
//	func NewMenuItem(description string, price Money) (MenuItem, error) {
//	    if description == "" {
//	        return MenuItem{}, errors.New("description is required")
//	    }
//	    return MenuItem{
//	        description: description,
//	        price:       price,
//	        guard:       guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (m MenuItem) Validate() error {
//	    return m.guard.Validate(ErrMenuItemIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it inside the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

// Package guard implements the constructor-guard pattern used by value objects
// and commands throughout the application. Embedding a ConstructorGuard in a
// struct makes zero-value instances detectable: only values created through
// their designated constructor pass validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is
// unconstructed and fails validation.
//
// Example usage:
//
//	var ErrQuoteNotConstructed = errors.New("Quote must be created via NewQuote")
//
//	type Quote struct {
//	    amount int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewQuote(amount int) (Quote, error) {
//	    if amount < 0 {
//	        return Quote{}, errors.New("amount cannot be negative")
//	    }
//	    return Quote{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q Quote) Validate() error {
//	    return q.guard.Validate(ErrQuoteNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

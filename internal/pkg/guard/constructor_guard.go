// Package guard provides the ConstructorGuard pattern used by domain objects
// and commands to reject zero-value instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed for a zero-value guard, so validation always fails with a message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their constructor from
// zero values. Embed it in a struct, set it with NewConstructorGuard inside
// the constructor, and call Validate before operating on the object.
//
// Example:
//
//	type FinishPickingCommand struct {
//	    orderNumber kernel.OrderNumber
//	    guard       guard.ConstructorGuard
//	}
//
//	func NewFinishPickingCommand(n kernel.OrderNumber) (FinishPickingCommand, error) {
//	    if err := n.Validate(); err != nil {
//	        return FinishPickingCommand{}, err
//	    }
//	    return FinishPickingCommand{orderNumber: n, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c FinishPickingCommand) Validate() error {
//	    return c.guard.Validate(ErrFinishPickingCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSetRequestedQuantityCommandIsNotConstructed = errors.New(
	"SetRequestedQuantityCommand must be created via NewSetRequestedQuantityCommand constructor",
)

// SetRequestedQuantityCommand corrects the requested quantity of a line
// after the order was handed over, typically when the customer amends the
// order by phone.
type SetRequestedQuantityCommand struct { //nolint:recvcheck //using for validation
	lineID   kernel.LineID
	quantity int

	guard guard.ConstructorGuard
}

// NewSetRequestedQuantityCommand creates a command to overwrite a line's
// requested quantity. Zero is allowed; a line can be amended down to
// nothing without being deleted.
func NewSetRequestedQuantityCommand(lineID kernel.LineID, quantity int) (SetRequestedQuantityCommand, error) {
	command := SetRequestedQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLineID(lineID),
		command.setQuantity(quantity),
	); err != nil {
		return SetRequestedQuantityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRequestedQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetRequestedQuantityCommandIsNotConstructed)
}

// LineID returns the line being amended.
func (c SetRequestedQuantityCommand) LineID() kernel.LineID {
	return c.lineID
}

// Quantity returns the new requested quantity.
func (c SetRequestedQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *SetRequestedQuantityCommand) setLineID(lineID kernel.LineID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *SetRequestedQuantityCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}

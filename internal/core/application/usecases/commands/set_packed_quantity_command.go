package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSetPackedQuantityCommandIsNotConstructed = errors.New(
	"SetPackedQuantityCommand must be created via NewSetPackedQuantityCommand constructor",
)

// SetPackedQuantityCommand records how many units of a line made it into
// boxes. The aggregate rejects packing more than was picked when a picked
// count is known.
type SetPackedQuantityCommand struct { //nolint:recvcheck //using for validation
	lineID   kernel.LineID
	quantity int

	guard guard.ConstructorGuard
}

// NewSetPackedQuantityCommand creates a command to record a line's packed
// quantity.
func NewSetPackedQuantityCommand(lineID kernel.LineID, quantity int) (SetPackedQuantityCommand, error) {
	command := SetPackedQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLineID(lineID),
		command.setQuantity(quantity),
	); err != nil {
		return SetPackedQuantityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPackedQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetPackedQuantityCommandIsNotConstructed)
}

// LineID returns the line being reported.
func (c SetPackedQuantityCommand) LineID() kernel.LineID {
	return c.lineID
}

// Quantity returns the reported packed quantity.
func (c SetPackedQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *SetPackedQuantityCommand) setLineID(lineID kernel.LineID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *SetPackedQuantityCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}

package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSetPickedQuantityCommandIsNotConstructed = errors.New(
	"SetPickedQuantityCommand must be created via NewSetPickedQuantityCommand constructor",
)

// SetPickedQuantityCommand overwrites the picked quantity of a line with
// the picker's reported count. For incremental counting during a long pick,
// use AddPickedQuantityCommand instead.
type SetPickedQuantityCommand struct { //nolint:recvcheck //using for validation
	lineID   kernel.LineID
	quantity int

	guard guard.ConstructorGuard
}

// NewSetPickedQuantityCommand creates a command to overwrite a line's
// picked quantity.
func NewSetPickedQuantityCommand(lineID kernel.LineID, quantity int) (SetPickedQuantityCommand, error) {
	command := SetPickedQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLineID(lineID),
		command.setQuantity(quantity),
	); err != nil {
		return SetPickedQuantityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPickedQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetPickedQuantityCommandIsNotConstructed)
}

// LineID returns the line being reported.
func (c SetPickedQuantityCommand) LineID() kernel.LineID {
	return c.lineID
}

// Quantity returns the reported picked quantity.
func (c SetPickedQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *SetPickedQuantityCommand) setLineID(lineID kernel.LineID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *SetPickedQuantityCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}

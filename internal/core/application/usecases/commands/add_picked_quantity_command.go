package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAddPickedQuantityCommandIsNotConstructed = errors.New(
	"AddPickedQuantityCommand must be created via NewAddPickedQuantityCommand constructor",
)

// AddPickedQuantityCommand increments the picked quantity of a line. An
// unreported line counts as zero, so the first increment behaves like a
// plain set.
type AddPickedQuantityCommand struct { //nolint:recvcheck //using for validation
	lineID kernel.LineID
	delta  int

	guard guard.ConstructorGuard
}

// NewAddPickedQuantityCommand creates a command to increment a line's
// picked quantity. The delta must be positive; decrements go through
// SetPickedQuantityCommand with the corrected total.
func NewAddPickedQuantityCommand(lineID kernel.LineID, delta int) (AddPickedQuantityCommand, error) {
	command := AddPickedQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLineID(lineID),
		command.setDelta(delta),
	); err != nil {
		return AddPickedQuantityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPickedQuantityCommand) Validate() error {
	return c.guard.Validate(ErrAddPickedQuantityCommandIsNotConstructed)
}

// LineID returns the line being reported.
func (c AddPickedQuantityCommand) LineID() kernel.LineID {
	return c.lineID
}

// Delta returns the increment.
func (c AddPickedQuantityCommand) Delta() int {
	return c.delta
}

func (c *AddPickedQuantityCommand) setLineID(lineID kernel.LineID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *AddPickedQuantityCommand) setDelta(delta int) error {
	if delta <= 0 {
		return errs.NewValueIsInvalidError("delta")
	}

	c.delta = delta
	return nil
}

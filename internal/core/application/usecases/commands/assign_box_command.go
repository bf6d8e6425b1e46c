package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignBoxCommandIsNotConstructed = errors.New(
	"AssignBoxCommand must be created via NewAssignBoxCommand constructor",
)

// AssignBoxCommand records which box a line was packed into. The label is
// freeform; packers write whatever is printed on the box.
type AssignBoxCommand struct { //nolint:recvcheck //using for validation
	lineID kernel.LineID
	label  string

	guard guard.ConstructorGuard
}

// NewAssignBoxCommand creates a command to record a line's box label.
func NewAssignBoxCommand(lineID kernel.LineID, label string) (AssignBoxCommand, error) {
	command := AssignBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLineID(lineID),
		command.setLabel(label),
	); err != nil {
		return AssignBoxCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignBoxCommand) Validate() error {
	return c.guard.Validate(ErrAssignBoxCommandIsNotConstructed)
}

// LineID returns the line being boxed.
func (c AssignBoxCommand) LineID() kernel.LineID {
	return c.lineID
}

// Label returns the box label.
func (c AssignBoxCommand) Label() string {
	return c.label
}

func (c *AssignBoxCommand) setLineID(lineID kernel.LineID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *AssignBoxCommand) setLabel(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("label")
	}

	c.label = label
	return nil
}

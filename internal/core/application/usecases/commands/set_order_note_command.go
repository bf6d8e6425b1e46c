package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSetOrderNoteCommandIsNotConstructed = errors.New(
	"SetOrderNoteCommand must be created via NewSetOrderNoteCommand constructor",
)

// NoteKind distinguishes the two freeform note fields an order carries.
type NoteKind int

const (
	// PickerNote is the note field written during picking.
	PickerNote NoteKind = iota + 1
	// PackerNote is the note field written during packing.
	PackerNote
)

// Validate checks the note kind is one of the known fields.
func (k NoteKind) Validate() error {
	if k != PickerNote && k != PackerNote {
		return errs.NewValueIsInvalidError("noteKind")
	}
	return nil
}

// SetOrderNoteCommand replaces one of an order's note fields. Notes can be
// written in any order status; a packer flagging a shortage after the order
// moved on is the normal case, not an error.
type SetOrderNoteCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber
	kind        NoteKind
	text        string

	guard guard.ConstructorGuard
}

// NewSetOrderNoteCommand creates a command to set an order note.
func NewSetOrderNoteCommand(orderNumber kernel.OrderNumber, kind NoteKind, text string) (SetOrderNoteCommand, error) {
	command := SetOrderNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderNumber(orderNumber),
		command.setKind(kind),
		command.setText(text),
	); err != nil {
		return SetOrderNoteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderNoteCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderNoteCommandIsNotConstructed)
}

// OrderNumber returns the order being annotated.
func (c SetOrderNoteCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// Kind returns which note field is being written.
func (c SetOrderNoteCommand) Kind() NoteKind {
	return c.kind
}

// Text returns the note text.
func (c SetOrderNoteCommand) Text() string {
	return c.text
}

func (c *SetOrderNoteCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *SetOrderNoteCommand) setKind(kind NoteKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *SetOrderNoteCommand) setText(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("text")
	}

	c.text = text
	return nil
}

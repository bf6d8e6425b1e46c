package commands

import (
	"context"
)

// SetOrderNoteCommandHandler writes picker or packer notes onto an order.
type SetOrderNoteCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetOrderNoteCommandHandler creates a handler for order note updates.
func NewSetOrderNoteCommandHandler(uowFactory OrderUoWFactory) SetOrderNoteCommandHandler {
	return SetOrderNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the note update.
func (h SetOrderNoteCommandHandler) Handle(ctx context.Context, command SetOrderNoteCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, command.OrderNumber())
	if err != nil {
		return err
	}

	switch command.Kind() {
	case PickerNote:
		err = aggregate.SetPickerNote(command.Text())
	case PackerNote:
		err = aggregate.SetPackerNote(command.Text())
	}
	if err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
)

// SetRequestedQuantityCommandHandler overwrites a line's requested quantity.
type SetRequestedQuantityCommandHandler struct {
	uowFactory LineUoWFactory
}

// NewSetRequestedQuantityCommandHandler creates a handler for requested
// quantity amendments.
func NewSetRequestedQuantityCommandHandler(uowFactory LineUoWFactory) SetRequestedQuantityCommandHandler {
	return SetRequestedQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the amendment.
func (h SetRequestedQuantityCommandHandler) Handle(ctx context.Context, command SetRequestedQuantityCommand) error {
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

	repo := uow.LineRepository()

	aggregate, err := repo.Get(ctx, command.LineID())
	if err != nil {
		return err
	}

	if err := aggregate.SetRequestedQuantity(command.Quantity()); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

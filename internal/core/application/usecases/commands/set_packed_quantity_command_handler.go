package commands

import (
	"context"
)

// SetPackedQuantityCommandHandler records a line's packed quantity.
type SetPackedQuantityCommandHandler struct {
	uowFactory LineUoWFactory
}

// NewSetPackedQuantityCommandHandler creates a handler for packed quantity
// reports.
func NewSetPackedQuantityCommandHandler(uowFactory LineUoWFactory) SetPackedQuantityCommandHandler {
	return SetPackedQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the report.
func (h SetPackedQuantityCommandHandler) Handle(ctx context.Context, command SetPackedQuantityCommand) error {
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

	if err := aggregate.SetPackedQuantity(command.Quantity()); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

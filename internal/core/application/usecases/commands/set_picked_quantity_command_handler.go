package commands

import (
	"context"
)

// SetPickedQuantityCommandHandler overwrites a line's picked quantity.
type SetPickedQuantityCommandHandler struct {
	uowFactory LineUoWFactory
}

// NewSetPickedQuantityCommandHandler creates a handler for picked quantity
// reports.
func NewSetPickedQuantityCommandHandler(uowFactory LineUoWFactory) SetPickedQuantityCommandHandler {
	return SetPickedQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the report.
func (h SetPickedQuantityCommandHandler) Handle(ctx context.Context, command SetPickedQuantityCommand) error {
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

	if err := aggregate.SetPickedQuantity(command.Quantity()); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

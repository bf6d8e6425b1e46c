package commands

import (
	"context"
)

// AddPickedQuantityCommandHandler increments a line's picked quantity.
type AddPickedQuantityCommandHandler struct {
	uowFactory LineUoWFactory
}

// NewAddPickedQuantityCommandHandler creates a handler for incremental
// picked quantity reports.
func NewAddPickedQuantityCommandHandler(uowFactory LineUoWFactory) AddPickedQuantityCommandHandler {
	return AddPickedQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the increment.
func (h AddPickedQuantityCommandHandler) Handle(ctx context.Context, command AddPickedQuantityCommand) error {
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

	if err := aggregate.AddPickedQuantity(command.Delta()); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

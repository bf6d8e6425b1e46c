package commands

import (
	"context"
)

// FinishPickingCommandHandler moves an order from En Proceso to
// Listo para empacar, stamping the caller-supplied stage timestamps.
type FinishPickingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFinishPickingCommandHandler creates a handler for finishing picking.
func NewFinishPickingCommandHandler(uowFactory OrderUoWFactory) FinishPickingCommandHandler {
	return FinishPickingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finish-picking command.
func (h FinishPickingCommandHandler) Handle(ctx context.Context, command FinishPickingCommand) error {
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

	if err := aggregate.FinishPicking(command.StartedAt(), command.FinishedAt(), command.Actor()); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
)

// FinishPackingCommandHandler moves an order from Empacando to
// Listo para despachar. The aggregate refuses the transition when no
// picker was ever recorded, which keeps half-processed orders out of
// dispatch review.
type FinishPackingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFinishPackingCommandHandler creates a handler for finishing packing.
func NewFinishPackingCommandHandler(uowFactory OrderUoWFactory) FinishPackingCommandHandler {
	return FinishPackingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finish-packing command.
func (h FinishPackingCommandHandler) Handle(ctx context.Context, command FinishPackingCommand) error {
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

	if err := aggregate.FinishPacking(command.StartedAt(), command.FinishedAt(), command.Actor()); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

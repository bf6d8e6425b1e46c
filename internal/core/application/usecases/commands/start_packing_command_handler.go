package commands

import (
	"context"
	"time"
)

// StartPackingCommandHandler loads the order, applies the packing claim,
// and persists it through the conditional update.
type StartPackingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartPackingCommandHandler creates a handler for packing claims.
func NewStartPackingCommandHandler(uowFactory OrderUoWFactory) StartPackingCommandHandler {
	return StartPackingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the packing claim. The pack start time is the server
// clock at handling time.
func (h StartPackingCommandHandler) Handle(ctx context.Context, command StartPackingCommand) error {
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

	if err := aggregate.StartPacking(command.Actor(), time.Now().UTC()); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"time"
)

// StartPickingCommandHandler loads the order, applies the picking claim,
// and persists it through the conditional update, so two pickers racing on
// the same order cannot both win.
type StartPickingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartPickingCommandHandler creates a handler for picking claims.
func NewStartPickingCommandHandler(uowFactory OrderUoWFactory) StartPickingCommandHandler {
	return StartPickingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the picking claim. The pick start time is the server
// clock at handling time, never caller input.
func (h StartPickingCommandHandler) Handle(ctx context.Context, command StartPickingCommand) error {
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

	if err := aggregate.StartPicking(command.Actor(), time.Now().UTC()); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

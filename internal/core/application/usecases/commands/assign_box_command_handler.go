package commands

import (
	"context"
)

// AssignBoxCommandHandler records which box a line was packed into.
type AssignBoxCommandHandler struct {
	uowFactory LineUoWFactory
}

// NewAssignBoxCommandHandler creates a handler for box assignments.
func NewAssignBoxCommandHandler(uowFactory LineUoWFactory) AssignBoxCommandHandler {
	return AssignBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the box assignment.
func (h AssignBoxCommandHandler) Handle(ctx context.Context, command AssignBoxCommand) error {
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

	if err := aggregate.AssignBox(command.Label()); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

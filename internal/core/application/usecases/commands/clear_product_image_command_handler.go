package commands

import (
	"context"
)

// ClearProductImageCommandHandler removes a product's image URL.
type ClearProductImageCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewClearProductImageCommandHandler creates a handler for image removal.
func NewClearProductImageCommandHandler(uowFactory ProductUoWFactory) ClearProductImageCommandHandler {
	return ClearProductImageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the image removal.
func (h ClearProductImageCommandHandler) Handle(ctx context.Context, command ClearProductImageCommand) error {
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

	repo := uow.ProductRepository()

	aggregate, err := repo.Get(ctx, command.ProductID())
	if err != nil {
		return err
	}

	aggregate.ClearImage()

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

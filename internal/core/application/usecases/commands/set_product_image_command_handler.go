package commands

import (
	"context"
)

// SetProductImageCommandHandler stores an image URL on a product.
type SetProductImageCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewSetProductImageCommandHandler creates a handler for image attachment.
func NewSetProductImageCommandHandler(uowFactory ProductUoWFactory) SetProductImageCommandHandler {
	return SetProductImageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the image attachment.
func (h SetProductImageCommandHandler) Handle(ctx context.Context, command SetProductImageCommand) error {
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

	if err := aggregate.SetImage(command.URL()); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

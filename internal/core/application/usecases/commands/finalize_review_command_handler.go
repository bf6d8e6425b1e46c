package commands

import (
	"context"
)

// FinalizeReviewCommandHandler closes orders that passed dispatch review.
type FinalizeReviewCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFinalizeReviewCommandHandler creates a handler for closing orders.
func NewFinalizeReviewCommandHandler(uowFactory OrderUoWFactory) FinalizeReviewCommandHandler {
	return FinalizeReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finalize-review command.
func (h FinalizeReviewCommandHandler) Handle(ctx context.Context, command FinalizeReviewCommand) error {
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

	if err := aggregate.FinalizeReview(); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

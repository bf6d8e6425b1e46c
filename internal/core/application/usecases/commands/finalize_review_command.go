package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrFinalizeReviewCommandIsNotConstructed = errors.New(
	"FinalizeReviewCommand must be created via NewFinalizeReviewCommand constructor",
)

// FinalizeReviewCommand closes an order after dispatch review, moving it
// from Listo para despachar to Terminado. Terminado is terminal: the
// workflow offers no way out of it.
type FinalizeReviewCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewFinalizeReviewCommand creates a command to close an order.
func NewFinalizeReviewCommand(orderNumber kernel.OrderNumber) (FinalizeReviewCommand, error) {
	command := FinalizeReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderNumber(orderNumber); err != nil {
		return FinalizeReviewCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeReviewCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeReviewCommandIsNotConstructed)
}

// OrderNumber returns the order being closed.
func (c FinalizeReviewCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

func (c *FinalizeReviewCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrClearProductImageCommandIsNotConstructed = errors.New(
	"ClearProductImageCommand must be created via NewClearProductImageCommand constructor",
)

// ClearProductImageCommand removes a product's image URL. Clearing a
// product that has no image succeeds; the end state is the same.
type ClearProductImageCommand struct { //nolint:recvcheck //using for validation
	productID kernel.ProductID

	guard guard.ConstructorGuard
}

// NewClearProductImageCommand creates a command to clear a product's image.
func NewClearProductImageCommand(productID kernel.ProductID) (ClearProductImageCommand, error) {
	command := ClearProductImageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setProductID(productID); err != nil {
		return ClearProductImageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearProductImageCommand) Validate() error {
	return c.guard.Validate(ErrClearProductImageCommandIsNotConstructed)
}

// ProductID returns the product losing its image.
func (c ClearProductImageCommand) ProductID() kernel.ProductID {
	return c.productID
}

func (c *ClearProductImageCommand) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

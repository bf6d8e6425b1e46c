package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSetProductImageCommandIsNotConstructed = errors.New(
	"SetProductImageCommand must be created via NewSetProductImageCommand constructor",
)

// SetProductImageCommand attaches an opaque image URL to a product. The
// upload itself happens against blob storage elsewhere; this system only
// stores the resulting URL.
type SetProductImageCommand struct { //nolint:recvcheck //using for validation
	productID kernel.ProductID
	url       string

	guard guard.ConstructorGuard
}

// NewSetProductImageCommand creates a command to set a product's image URL.
func NewSetProductImageCommand(productID kernel.ProductID, url string) (SetProductImageCommand, error) {
	command := SetProductImageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setURL(url),
	); err != nil {
		return SetProductImageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetProductImageCommand) Validate() error {
	return c.guard.Validate(ErrSetProductImageCommandIsNotConstructed)
}

// ProductID returns the product receiving the image.
func (c SetProductImageCommand) ProductID() kernel.ProductID {
	return c.productID
}

// URL returns the opaque image URL.
func (c SetProductImageCommand) URL() string {
	return c.url
}

func (c *SetProductImageCommand) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *SetProductImageCommand) setURL(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("url")
	}

	c.url = url
	return nil
}

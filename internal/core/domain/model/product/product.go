package product

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

const (
	maxReferenceLength   = 100
	maxDescriptionLength = 255
	maxImageURLLength    = 500
)

// Product is a catalog entry matched to order lines by reference. The only
// mutable piece of state is an image URL; the URL is opaque to this system,
// stored and served back, never fetched or decoded.
type Product struct {
	id          kernel.ProductID
	reference   string
	description string
	imageURL    *string

	isConstructed bool
}

// NewProduct creates a product without an image.
func NewProduct(id kernel.ProductID, reference, description string) (*Product, error) {
	product := &Product{
		id:            id,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		product.setReference(reference),
		product.setDescription(description),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id kernel.ProductID, reference, description string, imageURL *string) (*Product, error) {
	product, err := NewProduct(id, reference, description)
	if err != nil {
		return nil, err
	}
	if imageURL != nil {
		if err := product.SetImage(*imageURL); err != nil {
			return nil, err
		}
	}
	return product, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// SetImage stores an opaque image URL for the product.
func (p *Product) SetImage(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("imageUrl")
	}
	if len(url) > maxImageURLLength {
		return errs.NewValueIsOutOfRangeError("imageUrl", len(url), 1, maxImageURLLength)
	}
	p.imageURL = &url
	return nil
}

// ClearImage removes the product's image URL. Clearing an already empty
// image is not an error.
func (p *Product) ClearImage() {
	p.imageURL = nil
}

// ID returns the product identifier.
func (p *Product) ID() kernel.ProductID {
	return p.id
}

// Reference returns the catalog reference order lines are matched on.
func (p *Product) Reference() string {
	return p.reference
}

// Description returns the product description.
func (p *Product) Description() string {
	return p.description
}

// ImageURL returns the opaque image URL, or nil when none is set.
func (p *Product) ImageURL() *string {
	return p.imageURL
}

func (p *Product) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	if len(reference) > maxReferenceLength {
		return errs.NewValueIsOutOfRangeError("reference", len(reference), 1, maxReferenceLength)
	}
	p.reference = reference
	return nil
}

func (p *Product) setDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description", len(description), 0, maxDescriptionLength)
	}
	p.description = description
	return nil
}

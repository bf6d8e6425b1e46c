package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate. Returns an
	// ObjectNotFound error when no such product exists.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its identifier. Returns an
	// ObjectNotFound error when no such product exists.
	Get(ctx context.Context, id kernel.ProductID) (*product.Product, error)
}

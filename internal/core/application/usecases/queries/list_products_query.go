package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery retrieves the product catalog.
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a query for the product catalog.
func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

type ProductResponse struct {
	ProductID   int
	Reference   string
	Description string
	ImageURL    *string
}

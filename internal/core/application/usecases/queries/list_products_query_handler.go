package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListProductsQueryHandler retrieves the product catalog ordered by reference.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

// NewListProductsQueryHandler creates a handler for product catalog queries.
func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle executes the query.
func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			description,
			image_url
		FROM products
		ORDER BY reference
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		var productResp ProductResponse
		err = rows.Scan(
			&productResp.ProductID,
			&productResp.Reference,
			&productResp.Description,
			&productResp.ImageURL,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, productResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

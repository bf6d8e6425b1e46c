package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListPackableOrdersQueryHandler retrieves the packing board: orders whose
// packing stage is not yet finished, including those still being picked.
type ListPackableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListPackableOrdersQueryHandler creates a handler for the packing board.
func NewListPackableOrdersQueryHandler(db *gorm.DB) ListPackableOrdersQueryHandler {
	return ListPackableOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h ListPackableOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListPackableOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + orderSummaryColumns + `
		FROM orders
		WHERE status IN ('Listo para empacar', 'Empacando', 'En Proceso')
		  AND pack_finished_at IS NULL
		ORDER BY order_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		resp, err := scanOrderSummary(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListPickableOrdersQueryHandler retrieves the picking board: orders whose
// picking stage is not yet finished.
type ListPickableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListPickableOrdersQueryHandler creates a handler for the picking board.
func NewListPickableOrdersQueryHandler(db *gorm.DB) ListPickableOrdersQueryHandler {
	return ListPickableOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h ListPickableOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListPickableOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + orderSummaryColumns + `
		FROM orders
		WHERE status IN ('Pendiente', 'En Proceso', 'Empacando')
		  AND pick_finished_at IS NULL
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

package queries

import (
	"context"

	"gorm.io/gorm"
)

// orderSummaryColumns is the select list shared by the order listings.
const orderSummaryColumns = `
	order_number,
	status,
	customer,
	city,
	address,
	seller,
	created_at,
	picker,
	packer,
	pick_started_at,
	pick_finished_at,
	pack_started_at,
	pack_finished_at
`

// scanOrderSummary reads one listing row.
func scanOrderSummary(rows interface {
	Scan(dest ...any) error
}) (OrderSummaryResponse, error) {
	var resp OrderSummaryResponse
	err := rows.Scan(
		&resp.OrderNumber,
		&resp.Status,
		&resp.Customer,
		&resp.City,
		&resp.Address,
		&resp.Seller,
		&resp.CreatedAt,
		&resp.Picker,
		&resp.Packer,
		&resp.PickStartedAt,
		&resp.PickFinishedAt,
		&resp.PackStartedAt,
		&resp.PackFinishedAt,
	)
	return resp, err
}

// ListOrdersQueryHandler retrieves all orders ordered by number.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for the full order dump.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + orderSummaryColumns + `
		FROM orders
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

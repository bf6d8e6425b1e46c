package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListDispatchReadyOrdersQueryHandler retrieves fully packed orders with
// their lines for the dispatch review.
type ListDispatchReadyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListDispatchReadyOrdersQueryHandler creates a handler for the dispatch review board.
func NewListDispatchReadyOrdersQueryHandler(db *gorm.DB) ListDispatchReadyOrdersQueryHandler {
	return ListDispatchReadyOrdersQueryHandler{db: db}
}

// Handle executes the query. Line rows arrive ordered by order number, so
// consecutive lines of the same order fold into the last appended entry.
func (h ListDispatchReadyOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListDispatchReadyOrdersQuery,
) ([]DispatchReadyOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.order_number,
			o.customer,
			o.city,
			o.address,
			o.seller,
			o.picker,
			o.packer,
			o.pack_finished_at,
			l.id,
			l.sequence,
			l.reference,
			l.requested_quantity,
			l.packed_quantity,
			l.box
		FROM orders o
		LEFT JOIN order_lines l ON l.order_number = o.order_number
		WHERE o.status = 'Listo para despachar'
		ORDER BY o.order_number, l.sequence
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]DispatchReadyOrderResponse, 0)
	for rows.Next() {
		var orderResp DispatchReadyOrderResponse

		// Line columns are NULL for an order that reached dispatch with
		// no registered lines; it still shows up for review.
		var lineID, sequence, requestedQuantity *int
		var reference *string
		var lineResp DispatchReadyLineResponse

		err = rows.Scan(
			&orderResp.OrderNumber,
			&orderResp.Customer,
			&orderResp.City,
			&orderResp.Address,
			&orderResp.Seller,
			&orderResp.Picker,
			&orderResp.Packer,
			&orderResp.PackFinishedAt,
			&lineID,
			&sequence,
			&reference,
			&requestedQuantity,
			&lineResp.PackedQuantity,
			&lineResp.Box,
		)
		if err != nil {
			return nil, err
		}

		if len(orders) == 0 || orders[len(orders)-1].OrderNumber != orderResp.OrderNumber {
			orderResp.Lines = make([]DispatchReadyLineResponse, 0)
			orders = append(orders, orderResp)
		}
		if lineID == nil {
			continue
		}

		lineResp.LineID = *lineID
		lineResp.Sequence = *sequence
		lineResp.Reference = *reference
		lineResp.RequestedQuantity = *requestedQuantity
		last := &orders[len(orders)-1]
		last.Lines = append(last.Lines, lineResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

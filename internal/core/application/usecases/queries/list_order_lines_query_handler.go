package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrderLinesQueryHandler retrieves an order's lines with the parent
// order's notes attached to every row.
type ListOrderLinesQueryHandler struct {
	db *gorm.DB
}

// NewListOrderLinesQueryHandler creates a handler for order line listings.
func NewListOrderLinesQueryHandler(db *gorm.DB) ListOrderLinesQueryHandler {
	return ListOrderLinesQueryHandler{db: db}
}

// Handle executes the query.
func (h ListOrderLinesQueryHandler) Handle(
	ctx context.Context,
	query ListOrderLinesQuery,
) ([]OrderLineResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.order_number,
			l.sequence,
			l.reference,
			l.description,
			l.requested_quantity,
			l.picked_quantity,
			l.packed_quantity,
			l.box,
			l.unit_value,
			o.picker_notes,
			o.packer_notes
		FROM order_lines l
		JOIN orders o ON o.order_number = l.order_number
		WHERE l.order_number = ?
		ORDER BY l.sequence
	`, query.OrderNumber()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)
	for rows.Next() {
		var lineResp OrderLineResponse
		err = rows.Scan(
			&lineResp.LineID,
			&lineResp.OrderNumber,
			&lineResp.Sequence,
			&lineResp.Reference,
			&lineResp.Description,
			&lineResp.RequestedQuantity,
			&lineResp.PickedQuantity,
			&lineResp.PackedQuantity,
			&lineResp.Box,
			&lineResp.UnitValue,
			&lineResp.PickerNotes,
			&lineResp.PackerNotes,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, lineResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

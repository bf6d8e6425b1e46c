package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListLineDetailsWithImagesQueryHandler retrieves an order's lines joined
// with the catalog product matched by reference.
type ListLineDetailsWithImagesQueryHandler struct {
	db *gorm.DB
}

// NewListLineDetailsWithImagesQueryHandler creates a handler for illustrated line listings.
func NewListLineDetailsWithImagesQueryHandler(db *gorm.DB) ListLineDetailsWithImagesQueryHandler {
	return ListLineDetailsWithImagesQueryHandler{db: db}
}

// Handle executes the query. A reference with no catalog entry yields a
// row with nil product columns, not an error.
func (h ListLineDetailsWithImagesQueryHandler) Handle(
	ctx context.Context,
	query ListLineDetailsWithImagesQuery,
) ([]LineDetailWithImageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.sequence,
			l.reference,
			l.requested_quantity,
			l.picked_quantity,
			l.packed_quantity,
			l.box,
			p.description,
			p.image_url
		FROM order_lines l
		LEFT JOIN products p ON p.reference = l.reference
		WHERE l.order_number = ?
		ORDER BY l.sequence
	`, query.OrderNumber()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]LineDetailWithImageResponse, 0)
	for rows.Next() {
		var lineResp LineDetailWithImageResponse
		err = rows.Scan(
			&lineResp.LineID,
			&lineResp.Sequence,
			&lineResp.Reference,
			&lineResp.RequestedQuantity,
			&lineResp.PickedQuantity,
			&lineResp.PackedQuantity,
			&lineResp.Box,
			&lineResp.Description,
			&lineResp.ImageURL,
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

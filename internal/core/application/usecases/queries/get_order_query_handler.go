package queries

import (
	"context"

	"gorm.io/gorm"

	"fulfillment/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves the complete detail of a single order.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. A missing order is an ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_number,
			status,
			customer,
			city,
			address,
			seller,
			created_at,
			operator_id,
			picker,
			packer,
			pick_started_at,
			pick_finished_at,
			pack_started_at,
			pack_finished_at,
			picker_notes,
			packer_notes
		FROM orders
		WHERE order_number = ?
	`, query.OrderNumber()).Rows()
	if err != nil {
		return OrderDetailResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderDetailResponse{}, err
		}

		return OrderDetailResponse{}, errs.NewObjectNotFoundError("order", query.OrderNumber())
	}

	var orderResp OrderDetailResponse
	err = rows.Scan(
		&orderResp.OrderNumber,
		&orderResp.Status,
		&orderResp.Customer,
		&orderResp.City,
		&orderResp.Address,
		&orderResp.Seller,
		&orderResp.CreatedAt,
		&orderResp.OperatorID,
		&orderResp.Picker,
		&orderResp.Packer,
		&orderResp.PickStartedAt,
		&orderResp.PickFinishedAt,
		&orderResp.PackStartedAt,
		&orderResp.PackFinishedAt,
		&orderResp.PickerNotes,
		&orderResp.PackerNotes,
	)
	if err != nil {
		return OrderDetailResponse{}, err
	}

	return orderResp, nil
}

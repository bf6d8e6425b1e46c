package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/orderline"
)

// LineRepository defines the persistence contract for order line aggregates.
type LineRepository interface {
	// Add persists a new line aggregate to storage.
	Add(ctx context.Context, aggregate *orderline.Line) error

	// Update persists changes to an existing line aggregate.
	Update(ctx context.Context, aggregate *orderline.Line) error

	// Get retrieves a line aggregate by its identifier. Returns an
	// ObjectNotFound error when no such line exists.
	Get(ctx context.Context, id kernel.LineID) (*orderline.Line, error)

	// GetAllByOrder retrieves all lines of an order, ordered by sequence.
	GetAllByOrder(ctx context.Context, orderNumber kernel.OrderNumber) ([]*orderline.Line, error)
}

// Package ports defines the persistence contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// conditional on the status the aggregate was loaded with: when another
	// writer moved the order in the meantime, Update returns a
	// StateConflict error instead of overwriting.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its order number. Returns an
	// ObjectNotFound error when no such order exists.
	Get(ctx context.Context, orderNumber kernel.OrderNumber) (*order.Order, error)

	// Exists reports whether an order with the given number is stored,
	// without loading the aggregate. Used to tell a missing order apart
	// from a lost conditional update.
	Exists(ctx context.Context, orderNumber kernel.OrderNumber) (bool, error)
}

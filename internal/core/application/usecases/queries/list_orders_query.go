// Package queries contains read operations in the CQRS architecture. Query
// handlers read straight from the database with raw SQL and return
// presentation-shaped rows; they never load aggregates.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves every order regardless of stage. Used by the
// back office for a raw dump of the board.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list all orders.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OrderSummaryResponse is one order row in a listing. The stage listings
// (pickable, packable) and the full dump share this shape.
type OrderSummaryResponse struct {
	OrderNumber    int
	Status         string
	Customer       string
	City           string
	Address        string
	Seller         string
	CreatedAt      time.Time
	Picker         *string
	Packer         *string
	PickStartedAt  *time.Time
	PickFinishedAt *time.Time
	PackStartedAt  *time.Time
	PackFinishedAt *time.Time
}

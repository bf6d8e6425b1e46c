package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var ErrListDispatchReadyOrdersQueryIsNotConstructed = errors.New(
	"ListDispatchReadyOrdersQuery must be created via NewListDispatchReadyOrdersQuery constructor",
)

// ListDispatchReadyOrdersQuery retrieves fully packed orders awaiting the
// final review, each with its lines so the reviewer can check contents
// against boxes without extra lookups.
type ListDispatchReadyOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListDispatchReadyOrdersQuery creates a query for the dispatch review board.
func NewListDispatchReadyOrdersQuery() ListDispatchReadyOrdersQuery {
	return ListDispatchReadyOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListDispatchReadyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListDispatchReadyOrdersQueryIsNotConstructed)
}

type DispatchReadyOrderResponse struct {
	OrderNumber    int
	Customer       string
	City           string
	Address        string
	Seller         string
	Picker         *string
	Packer         *string
	PackFinishedAt *time.Time
	Lines          []DispatchReadyLineResponse
}

type DispatchReadyLineResponse struct {
	LineID            int
	Sequence          int
	Reference         string
	RequestedQuantity int
	PackedQuantity    *int
	Box               *string
}

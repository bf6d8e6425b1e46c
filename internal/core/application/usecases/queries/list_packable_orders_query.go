package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrListPackableOrdersQueryIsNotConstructed = errors.New(
	"ListPackableOrdersQuery must be created via NewListPackableOrdersQuery constructor",
)

// ListPackableOrdersQuery retrieves orders whose packing stage has not
// finished. Orders still being picked appear too so the packing team can
// anticipate incoming work.
type ListPackableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListPackableOrdersQuery creates a query for the packing board.
func NewListPackableOrdersQuery() ListPackableOrdersQuery {
	return ListPackableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListPackableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListPackableOrdersQueryIsNotConstructed)
}

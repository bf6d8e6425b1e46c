package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrListPickableOrdersQueryIsNotConstructed = errors.New(
	"ListPickableOrdersQuery must be created via NewListPickableOrdersQuery constructor",
)

// ListPickableOrdersQuery retrieves orders whose picking stage has not
// finished. The filter is "pick not finished", not "status is Pendiente":
// an order mid-pick stays on the picker's board until the finish is
// reported.
type ListPickableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListPickableOrdersQuery creates a query for the picking board.
func NewListPickableOrdersQuery() ListPickableOrdersQuery {
	return ListPickableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListPickableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListPickableOrdersQueryIsNotConstructed)
}

package queries

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrListOrderLinesQueryIsNotConstructed = errors.New(
	"ListOrderLinesQuery must be created via NewListOrderLinesQuery constructor",
)

// ListOrderLinesQuery retrieves an order's lines in sequence order, with
// the parent order's notes repeated on every row so floor screens can
// show them next to any line.
//
//nolint:recvcheck //using for validation
type ListOrderLinesQuery struct {
	orderNumber int

	guard guard.ConstructorGuard
}

// NewListOrderLinesQuery creates a query for an order's lines.
func NewListOrderLinesQuery(orderNumber int) (ListOrderLinesQuery, error) {
	var query ListOrderLinesQuery
	query.guard = guard.NewConstructorGuard()

	if err := query.setOrderNumber(orderNumber); err != nil {
		return ListOrderLinesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrderLinesQuery) Validate() error {
	return q.guard.Validate(ErrListOrderLinesQueryIsNotConstructed)
}

func (q ListOrderLinesQuery) OrderNumber() int {
	return q.orderNumber
}

func (q *ListOrderLinesQuery) setOrderNumber(orderNumber int) error {
	if orderNumber <= 0 {
		return errs.NewValueIsInvalidError("orderNumber")
	}

	q.orderNumber = orderNumber

	return nil
}

type OrderLineResponse struct {
	LineID            int
	OrderNumber       int
	Sequence          int
	Reference         string
	Description       string
	RequestedQuantity int
	PickedQuantity    *int
	PackedQuantity    *int
	Box               *string
	UnitValue         float64
	PickerNotes       *string
	PackerNotes       *string
}

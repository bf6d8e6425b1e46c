package queries

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrListLineDetailsWithImagesQueryIsNotConstructed = errors.New(
	"ListLineDetailsWithImagesQuery must be created via NewListLineDetailsWithImagesQuery constructor",
)

// ListLineDetailsWithImagesQuery retrieves an order's lines enriched with
// the catalog product matched by reference. Lines whose reference has no
// catalog entry still appear, with the product columns empty.
//
//nolint:recvcheck //using for validation
type ListLineDetailsWithImagesQuery struct {
	orderNumber int

	guard guard.ConstructorGuard
}

// NewListLineDetailsWithImagesQuery creates a query for illustrated line details.
func NewListLineDetailsWithImagesQuery(orderNumber int) (ListLineDetailsWithImagesQuery, error) {
	var query ListLineDetailsWithImagesQuery
	query.guard = guard.NewConstructorGuard()

	if err := query.setOrderNumber(orderNumber); err != nil {
		return ListLineDetailsWithImagesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListLineDetailsWithImagesQuery) Validate() error {
	return q.guard.Validate(ErrListLineDetailsWithImagesQueryIsNotConstructed)
}

func (q ListLineDetailsWithImagesQuery) OrderNumber() int {
	return q.orderNumber
}

func (q *ListLineDetailsWithImagesQuery) setOrderNumber(orderNumber int) error {
	if orderNumber <= 0 {
		return errs.NewValueIsInvalidError("orderNumber")
	}

	q.orderNumber = orderNumber

	return nil
}

type LineDetailWithImageResponse struct {
	LineID            int
	Sequence          int
	Reference         string
	RequestedQuantity int
	PickedQuantity    *int
	PackedQuantity    *int
	Box               *string
	Description       *string
	ImageURL          *string
}

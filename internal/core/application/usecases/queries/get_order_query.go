package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the complete detail of a single order,
// including the operational notes that stay off the listing boards.
//
//nolint:recvcheck //using for validation
type GetOrderQuery struct {
	orderNumber int

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order's detail.
func NewGetOrderQuery(orderNumber int) (GetOrderQuery, error) {
	var query GetOrderQuery
	query.guard = guard.NewConstructorGuard()

	if err := query.setOrderNumber(orderNumber); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderNumber() int {
	return q.orderNumber
}

func (q *GetOrderQuery) setOrderNumber(orderNumber int) error {
	if orderNumber <= 0 {
		return errs.NewValueIsInvalidError("orderNumber")
	}

	q.orderNumber = orderNumber

	return nil
}

type OrderDetailResponse struct {
	OrderNumber    int
	Status         string
	Customer       string
	City           string
	Address        string
	Seller         string
	CreatedAt      time.Time
	OperatorID     int
	Picker         *string
	Packer         *string
	PickStartedAt  *time.Time
	PickFinishedAt *time.Time
	PackStartedAt  *time.Time
	PackFinishedAt *time.Time
	PickerNotes    *string
	PackerNotes    *string
}

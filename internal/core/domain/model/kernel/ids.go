package kernel

import (
	"fmt"
	"strconv"

	"fulfillment/internal/pkg/errs"
)

// Identifiers in this system are integers assigned by external systems
// (the order-entry system for orders, the database for detail/task rows).
// Each gets its own type so an order number cannot be passed where a
// line id is expected.

// OrderNumber identifies an order. Externally assigned, always positive.
type OrderNumber int

// NewOrderNumber validates and wraps a raw order number.
func NewOrderNumber(n int) (OrderNumber, error) {
	if n <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%d is not a positive integer", n))
	}
	return OrderNumber(n), nil
}

// ParseOrderNumber parses an order number from its string form,
// as it arrives in URL path parameters.
func ParseOrderNumber(s string) (OrderNumber, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("orderNumber", err)
	}
	return NewOrderNumber(n)
}

// Validate checks the order number is positive.
func (n OrderNumber) Validate() error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%d is not a positive integer", int(n)))
	}
	return nil
}

// Int returns the raw integer value.
func (n OrderNumber) Int() int {
	return int(n)
}

func (n OrderNumber) String() string {
	return strconv.Itoa(int(n))
}

// LineID identifies one order line (DetalleID in the upstream store).
type LineID int

// NewLineID validates and wraps a raw line id.
func NewLineID(n int) (LineID, error) {
	if n <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("lineId",
			fmt.Errorf("%d is not a positive integer", n))
	}
	return LineID(n), nil
}

// ParseLineID parses a line id from its string form.
func ParseLineID(s string) (LineID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("lineId", err)
	}
	return NewLineID(n)
}

// Validate checks the line id is positive.
func (n LineID) Validate() error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("lineId",
			fmt.Errorf("%d is not a positive integer", int(n)))
	}
	return nil
}

// Int returns the raw integer value.
func (n LineID) Int() int {
	return int(n)
}

func (n LineID) String() string {
	return strconv.Itoa(int(n))
}

// TaskID identifies a task (TareaID in the upstream store).
type TaskID int

// NewTaskID validates and wraps a raw task id.
func NewTaskID(n int) (TaskID, error) {
	if n <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("taskId",
			fmt.Errorf("%d is not a positive integer", n))
	}
	return TaskID(n), nil
}

// ParseTaskID parses a task id from its string form.
func ParseTaskID(s string) (TaskID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("taskId", err)
	}
	return NewTaskID(n)
}

// Validate checks the task id is positive.
func (n TaskID) Validate() error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("taskId",
			fmt.Errorf("%d is not a positive integer", int(n)))
	}
	return nil
}

// Int returns the raw integer value.
func (n TaskID) Int() int {
	return int(n)
}

func (n TaskID) String() string {
	return strconv.Itoa(int(n))
}

// AssignmentID identifies one (task, operator) assignment row.
type AssignmentID int

// NewAssignmentID validates and wraps a raw assignment id.
func NewAssignmentID(n int) (AssignmentID, error) {
	if n <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("assignmentId",
			fmt.Errorf("%d is not a positive integer", n))
	}
	return AssignmentID(n), nil
}

// Validate checks the assignment id is positive.
func (n AssignmentID) Validate() error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("assignmentId",
			fmt.Errorf("%d is not a positive integer", int(n)))
	}
	return nil
}

// Int returns the raw integer value.
func (n AssignmentID) Int() int {
	return int(n)
}

func (n AssignmentID) String() string {
	return strconv.Itoa(int(n))
}

// OperatorID identifies the user an assignment targets.
type OperatorID int

// NewOperatorID validates and wraps a raw operator id.
func NewOperatorID(n int) (OperatorID, error) {
	if n <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("operatorId",
			fmt.Errorf("%d is not a positive integer", n))
	}
	return OperatorID(n), nil
}

// ParseOperatorID parses an operator id from its string form.
func ParseOperatorID(s string) (OperatorID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("operatorId", err)
	}
	return NewOperatorID(n)
}

// Validate checks the operator id is positive.
func (n OperatorID) Validate() error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("operatorId",
			fmt.Errorf("%d is not a positive integer", int(n)))
	}
	return nil
}

// Int returns the raw integer value.
func (n OperatorID) Int() int {
	return int(n)
}

func (n OperatorID) String() string {
	return strconv.Itoa(int(n))
}

// ProductID identifies a catalog product.
type ProductID int

// NewProductID validates and wraps a raw product id.
func NewProductID(n int) (ProductID, error) {
	if n <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("%d is not a positive integer", n))
	}
	return ProductID(n), nil
}

// ParseProductID parses a product id from its string form.
func ParseProductID(s string) (ProductID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("productId", err)
	}
	return NewProductID(n)
}

// Validate checks the product id is positive.
func (n ProductID) Validate() error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("%d is not a positive integer", int(n)))
	}
	return nil
}

// Int returns the raw integer value.
func (n ProductID) Int() int {
	return int(n)
}

func (n ProductID) String() string {
	return strconv.Itoa(int(n))
}

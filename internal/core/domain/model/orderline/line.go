package orderline

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrLineIsNotConstructed is returned when a Line instance was not created
	// through NewLine or RestoreLine.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine")
)

const (
	maxReferenceLength   = 100
	maxDescriptionLength = 255
	maxBoxLabelLength    = 100
	maxQuantity          = 1000000
)

// Line is one product line within an order. It tracks the ledger of
// requested versus actually-picked versus actually-packed quantities and
// the box the line was packed into.
//
// Line maintains these invariants:
//   - requested quantity is never negative
//   - picked and packed quantities, once reported, are never negative
//   - the packed quantity never exceeds the picked quantity when both are known
//
// Picked quantity may legitimately differ from the requested quantity:
// partial fulfillment is a normal outcome, not an error.
type Line struct {
	id          kernel.LineID
	orderNumber kernel.OrderNumber
	sequence    int
	reference   string
	description string

	requestedQty int
	pickedQty    *int
	packedQty    *int
	box          *string
	unitValue    float64

	isConstructed bool
}

// NewLine creates a line as the order-entry system hands it over: only the
// requested quantity is known, nothing has been picked or packed yet.
func NewLine(
	id kernel.LineID,
	orderNumber kernel.OrderNumber,
	sequence int,
	reference, description string,
	requestedQty int,
	unitValue float64,
) (*Line, error) {
	line := &Line{
		id:            id,
		orderNumber:   orderNumber,
		unitValue:     unitValue,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		orderNumber.Validate(),
		line.setSequence(sequence),
		line.setReference(reference),
		line.setDescription(description),
		line.SetRequestedQuantity(requestedQty),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs a line from persistence, including whatever
// picked/packed quantities and box assignment were already recorded.
func RestoreLine(
	id kernel.LineID,
	orderNumber kernel.OrderNumber,
	sequence int,
	reference, description string,
	requestedQty int,
	pickedQty, packedQty *int,
	box *string,
	unitValue float64,
) (*Line, error) {
	line, err := NewLine(id, orderNumber, sequence, reference, description, requestedQty, unitValue)
	if err != nil {
		return nil, err
	}

	if pickedQty != nil {
		if err := line.SetPickedQuantity(*pickedQty); err != nil {
			return nil, err
		}
	}
	if packedQty != nil {
		if err := line.SetPackedQuantity(*packedQty); err != nil {
			return nil, err
		}
	}
	if box != nil {
		if err := line.AssignBox(*box); err != nil {
			return nil, err
		}
	}

	return line, nil
}

// Validate ensures the Line instance was properly constructed.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line identifier.
func (l *Line) ID() kernel.LineID {
	return l.id
}

// OrderNumber returns the owning order.
func (l *Line) OrderNumber() kernel.OrderNumber {
	return l.orderNumber
}

// Sequence returns the display/pick position of the line within its order.
func (l *Line) Sequence() int {
	return l.sequence
}

// Reference returns the product code.
func (l *Line) Reference() string {
	return l.reference
}

// Description returns the product description.
func (l *Line) Description() string {
	return l.description
}

// RequestedQuantity returns the authoritative target quantity.
func (l *Line) RequestedQuantity() int {
	return l.requestedQty
}

// PickedQuantity returns the last reported picked quantity, or nil if the
// line has not been picked.
func (l *Line) PickedQuantity() *int {
	return l.pickedQty
}

// PackedQuantity returns the last reported packed quantity, or nil if the
// line has not been packed.
func (l *Line) PackedQuantity() *int {
	return l.packedQty
}

// Box returns the container label assigned at packing time, or nil.
func (l *Line) Box() *string {
	return l.box
}

// UnitValue returns the unit price of the product.
func (l *Line) UnitValue() float64 {
	return l.unitValue
}

// SetRequestedQuantity overwrites the target quantity.
func (l *Line) SetRequestedQuantity(q int) error {
	if q < 0 || q > maxQuantity {
		return errs.NewValueIsOutOfRangeError("requestedQuantity", q, 0, maxQuantity)
	}
	l.requestedQty = q
	return nil
}

// SetPickedQuantity overwrites the picked quantity with the latest reported
// actual. The ledger stores what was last reported, not a running sum; use
// AddPickedQuantity for incremental reports.
func (l *Line) SetPickedQuantity(q int) error {
	if q < 0 || q > maxQuantity {
		return errs.NewValueIsOutOfRangeError("pickedQuantity", q, 0, maxQuantity)
	}
	l.pickedQty = &q
	return nil
}

// AddPickedQuantity increments the picked quantity by delta. An unreported
// picked quantity counts as zero. The result must stay within bounds.
func (l *Line) AddPickedQuantity(delta int) error {
	current := 0
	if l.pickedQty != nil {
		current = *l.pickedQty
	}
	next := current + delta
	if next < 0 || next > maxQuantity {
		return errs.NewValueIsOutOfRangeError("pickedQuantity", next, 0, maxQuantity)
	}
	l.pickedQty = &next
	return nil
}

// SetPackedQuantity overwrites the packed quantity. A packed quantity that
// exceeds the known picked quantity is a data integrity violation and is
// rejected; the upstream system omitted this check and produced rows where
// more units left in boxes than were ever picked.
func (l *Line) SetPackedQuantity(q int) error {
	if q < 0 || q > maxQuantity {
		return errs.NewValueIsOutOfRangeError("packedQuantity", q, 0, maxQuantity)
	}
	if l.pickedQty != nil && q > *l.pickedQty {
		return errs.NewValueIsInvalidErrorWithCause("packedQuantity",
			fmt.Errorf("%d exceeds picked quantity %d", q, *l.pickedQty))
	}
	l.packedQty = &q
	return nil
}

// AssignBox records the container the line was packed into.
func (l *Line) AssignBox(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("box")
	}
	if len(label) > maxBoxLabelLength {
		return errs.NewValueIsOutOfRangeError("box", len(label), 1, maxBoxLabelLength)
	}
	l.box = &label
	return nil
}

func (l *Line) setSequence(sequence int) error {
	if sequence <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("%d is not a positive integer", sequence))
	}
	l.sequence = sequence
	return nil
}

func (l *Line) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	if len(reference) > maxReferenceLength {
		return errs.NewValueIsOutOfRangeError("reference", len(reference), 1, maxReferenceLength)
	}
	l.reference = reference
	return nil
}

func (l *Line) setDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description", len(description), 0, maxDescriptionLength)
	}
	l.description = description
	return nil
}

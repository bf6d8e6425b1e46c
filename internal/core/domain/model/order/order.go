package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrPickerNotSet is the cause attached to the conflict returned when
	// packing is finalized on an order that no one picked.
	ErrPickerNotSet = errors.New("cannot finish packing an order no one picked")
)

// Details carries the descriptive order fields the workflow never
// interprets: who the customer is, where the order ships, who sold it.
// They are persisted verbatim and returned verbatim.
type Details struct {
	Customer   string
	City       string
	Address    string
	Seller     string
	CreatedAt  time.Time
	OperatorID int
}

// Order is the aggregate root for the fulfillment workflow. It tracks the
// order's stage, who performed each stage and when, and the freeform notes
// left by pickers and packers.
//
// Order maintains these invariants:
//   - status transitions follow the Status state machine
//   - a finish timestamp is only ever set together with its start timestamp,
//     and never precedes it
//   - picker/packer attribution is stamped by the transition that enters
//     the corresponding stage
//
// loadedStatus records the status the order had when it was read from the
// repository; the repository uses it as the precondition of its conditional
// update so two actors racing on the same order cannot lose each other's
// writes.
type Order struct {
	orderNumber kernel.OrderNumber
	status      Status

	picker         *string
	packer         *string
	pickStartedAt  *time.Time
	pickFinishedAt *time.Time
	packStartedAt  *time.Time
	packFinishedAt *time.Time
	pickerNotes    *string
	packerNotes    *string

	details Details

	loadedStatus  Status
	isConstructed bool
}

// NewOrder creates an order as the order-entry system hands it over:
// Pending status, no stage fields populated.
func NewOrder(orderNumber kernel.OrderNumber, details Details) (*Order, error) {
	if err := orderNumber.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		orderNumber:   orderNumber,
		status:        Pending,
		details:       details,
		loadedStatus:  Pending,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. The supplied status
// becomes both the current and the loaded status. Timestamp pairs are
// checked for the start-before-finish invariant so corrupt rows surface at
// the repository edge rather than deep inside a transition.
func RestoreOrder(
	orderNumber kernel.OrderNumber,
	status Status,
	picker, packer *string,
	pickStartedAt, pickFinishedAt, packStartedAt, packFinishedAt *time.Time,
	pickerNotes, packerNotes *string,
	details Details,
) (*Order, error) {
	if err := errors.Join(
		orderNumber.Validate(),
		status.Validate(),
		validateStagePair("pick", pickStartedAt, pickFinishedAt),
		validateStagePair("pack", packStartedAt, packFinishedAt),
	); err != nil {
		return nil, err
	}

	return &Order{
		orderNumber:    orderNumber,
		status:         status,
		picker:         picker,
		packer:         packer,
		pickStartedAt:  pickStartedAt,
		pickFinishedAt: pickFinishedAt,
		packStartedAt:  packStartedAt,
		packFinishedAt: packFinishedAt,
		pickerNotes:    pickerNotes,
		packerNotes:    packerNotes,
		details:        details,
		loadedStatus:   status,
		isConstructed:  true,
	}, nil
}

func validateStagePair(stage string, startedAt, finishedAt *time.Time) error {
	if finishedAt == nil {
		return nil
	}
	if startedAt == nil {
		return errs.NewValueIsRequiredError(stage + "StartedAt")
	}
	if finishedAt.Before(*startedAt) {
		return errs.NewValueIsInvalidError(stage + "FinishedAt precedes " + stage + "StartedAt")
	}
	return nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their order numbers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.orderNumber == other.orderNumber
}

// OrderNumber returns the externally assigned order identifier.
func (o *Order) OrderNumber() kernel.OrderNumber {
	return o.orderNumber
}

// Status returns the current workflow status.
func (o *Order) Status() Status {
	return o.status
}

// LoadedStatus returns the status the order had when it was read from the
// repository. Conditional updates use it as their precondition.
func (o *Order) LoadedStatus() Status {
	return o.loadedStatus
}

// Picker returns the name of the picker, or nil if picking never started.
func (o *Order) Picker() *string {
	return o.picker
}

// Packer returns the name of the packer, or nil if packing never started.
func (o *Order) Packer() *string {
	return o.packer
}

// PickStartedAt returns when picking started, or nil.
func (o *Order) PickStartedAt() *time.Time {
	return o.pickStartedAt
}

// PickFinishedAt returns when picking finished, or nil.
func (o *Order) PickFinishedAt() *time.Time {
	return o.pickFinishedAt
}

// PackStartedAt returns when packing started, or nil.
func (o *Order) PackStartedAt() *time.Time {
	return o.packStartedAt
}

// PackFinishedAt returns when packing finished, or nil.
func (o *Order) PackFinishedAt() *time.Time {
	return o.packFinishedAt
}

// PickerNotes returns the picker's freeform notes, or nil.
func (o *Order) PickerNotes() *string {
	return o.pickerNotes
}

// PackerNotes returns the packer's freeform notes, or nil.
func (o *Order) PackerNotes() *string {
	return o.packerNotes
}

// Details returns the descriptive fields the workflow does not interpret.
func (o *Order) Details() Details {
	return o.details
}

// StartPicking claims the order for a picker. The pick start timestamp is
// the server clock, not caller input, so claim times cannot be forged.
//
// Allowed only from Pending; any other status returns a state conflict.
func (o *Order) StartPicking(actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.StartPicking()
	if err != nil {
		return err
	}

	name := actor.DisplayName()
	o.status = newStatus
	o.picker = &name
	o.pickStartedAt = &now
	return nil
}

// FinishPicking records the end of the picking stage. Both timestamps come
// from the caller: the client measures the time physically spent walking
// the warehouse, and the server persists those values without second-guessing
// them. Both are required, and the start must not follow the finish.
//
// Allowed only from Picking.
func (o *Order) FinishPicking(startedAt, finishedAt time.Time, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if startedAt.IsZero() {
		return errs.NewValueIsRequiredError("pickStartedAt")
	}
	if finishedAt.IsZero() {
		return errs.NewValueIsRequiredError("pickFinishedAt")
	}
	if finishedAt.Before(startedAt) {
		return errs.NewValueIsInvalidError("pickFinishedAt precedes pickStartedAt")
	}

	newStatus, err := o.status.FinishPicking()
	if err != nil {
		return err
	}

	name := actor.DisplayName()
	o.status = newStatus
	o.picker = &name
	o.pickStartedAt = &startedAt
	o.pickFinishedAt = &finishedAt
	return nil
}

// StartPacking claims the order for a packer. Like StartPicking, the start
// timestamp is server-assigned.
//
// Allowed only from ReadyToPack.
func (o *Order) StartPacking(actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.StartPacking()
	if err != nil {
		return err
	}

	name := actor.DisplayName()
	o.status = newStatus
	o.packer = &name
	o.packStartedAt = &now
	return nil
}

// FinishPacking records the end of the packing stage with caller-supplied
// timestamps, mirroring FinishPicking.
//
// Allowed only from PackingInProgress, and only when a picker is already
// stamped on the order: packing cannot finalize an order no one picked.
func (o *Order) FinishPacking(startedAt, finishedAt time.Time, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if startedAt.IsZero() {
		return errs.NewValueIsRequiredError("packStartedAt")
	}
	if finishedAt.IsZero() {
		return errs.NewValueIsRequiredError("packFinishedAt")
	}
	if finishedAt.Before(startedAt) {
		return errs.NewValueIsInvalidError("packFinishedAt precedes packStartedAt")
	}
	if o.picker == nil {
		return errs.NewStateConflictErrorWithCause(
			"order", o.status.String(), PackingInProgress.String(), ErrPickerNotSet)
	}

	newStatus, err := o.status.FinishPacking()
	if err != nil {
		return err
	}

	name := actor.DisplayName()
	o.status = newStatus
	o.packer = &name
	o.packStartedAt = &startedAt
	o.packFinishedAt = &finishedAt
	return nil
}

// FinalizeReview marks the order as dispatched and done. No actor is
// stamped; review leaves no attribution.
//
// Allowed only from ReadyToDispatch.
func (o *Order) FinalizeReview() error {
	newStatus, err := o.status.FinalizeReview()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// SetPickerNote replaces the picker's note. Allowed in any status.
func (o *Order) SetPickerNote(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("pickerNote")
	}
	o.pickerNotes = &text
	return nil
}

// SetPackerNote replaces the packer's note. Allowed in any status.
func (o *Order) SetPackerNote(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("packerNote")
	}
	o.packerNotes = &text
	return nil
}

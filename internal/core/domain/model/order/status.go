package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order in the fulfillment
// workflow. It implements a state machine with defined transitions so
// orders always move through picking, packing and dispatch review in order.
//
// State transitions:
//
//	Pendiente ──> En Proceso ──> Listo para empacar ──> Empacando ──> Listo para despachar ──> Terminado
//
// The canonical string values are the Spanish stage names used by the
// warehouse and stored verbatim in the database.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned by the order-entry system.
	// Orders in this status are waiting for a picker to claim them.
	Pending

	// Picking indicates a picker has started retrieving items ("En Proceso").
	Picking

	// ReadyToPack indicates picking is finished ("Listo para empacar").
	ReadyToPack

	// PackingInProgress indicates a packer has started boxing ("Empacando").
	PackingInProgress

	// ReadyToDispatch indicates packing is finished and the order awaits
	// dispatch review ("Listo para despachar").
	ReadyToDispatch

	// Completed indicates dispatch review approved the order ("Terminado").
	// This is a final state; completed orders are retained for audit.
	Completed
)

// getStatusStrings returns a map of Status values to their canonical names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		Pending:           "Pendiente",
		Picking:           "En Proceso",
		ReadyToPack:       "Listo para empacar",
		PackingInProgress: "Empacando",
		ReadyToDispatch:   "Listo para despachar",
		Completed:         "Terminado",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:           "Pendiente",
		Picking:           "En Proceso",
		ReadyToPack:       "Listo para empacar",
		PackingInProgress: "Empacando",
		ReadyToDispatch:   "Listo para despachar",
		Completed:         "Terminado",
	}
}

// ParseStatus converts a stored status string back into a Status.
// Matching is case-insensitive because the upstream system wrote the
// stage names with inconsistent casing over the years.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(s, name) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known order status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical Spanish name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StartPicking transitions the status to Picking.
//
// Valid transition: Pending -> Picking. The upstream system allowed this
// from any status; the explicit guard closes that gap, so a second picker
// claiming the same order gets a state conflict instead of silently
// overwriting the first.
func (s Status) StartPicking() (Status, error) {
	if s != Pending {
		return 0, errs.NewStateConflictError("order", s.String(), Pending.String())
	}
	return Picking, nil
}

// FinishPicking transitions the status to ReadyToPack.
//
// Valid transition: Picking -> ReadyToPack.
func (s Status) FinishPicking() (Status, error) {
	if s != Picking {
		return 0, errs.NewStateConflictError("order", s.String(), Picking.String())
	}
	return ReadyToPack, nil
}

// StartPacking transitions the status to PackingInProgress.
//
// Valid transition: ReadyToPack -> PackingInProgress.
func (s Status) StartPacking() (Status, error) {
	if s != ReadyToPack {
		return 0, errs.NewStateConflictError("order", s.String(), ReadyToPack.String())
	}
	return PackingInProgress, nil
}

// FinishPacking transitions the status to ReadyToDispatch.
//
// Valid transition: PackingInProgress -> ReadyToDispatch.
func (s Status) FinishPacking() (Status, error) {
	if s != PackingInProgress {
		return 0, errs.NewStateConflictError("order", s.String(), PackingInProgress.String())
	}
	return ReadyToDispatch, nil
}

// FinalizeReview transitions the status to Completed.
//
// Valid transition: ReadyToDispatch -> Completed. Completed is a final
// state with no further transitions possible.
func (s Status) FinalizeReview() (Status, error) {
	if s != ReadyToDispatch {
		return 0, errs.NewStateConflictError("order", s.String(), ReadyToDispatch.String())
	}
	return Completed, nil
}

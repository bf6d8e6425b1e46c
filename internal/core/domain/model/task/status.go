package task

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// AssignmentStatus is the two-state workflow of a task assignment:
// assigned and waiting ("pendiente"), then evidence submitted
// ("en proceso"). En proceso is terminal in this system; any further
// lifecycle happens elsewhere.
type AssignmentStatus int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown AssignmentStatus = iota

	// StatusPending means the assignment is waiting for the operator
	// to act ("pendiente").
	StatusPending

	// StatusInProcess means at least one piece of evidence has been
	// submitted ("en proceso").
	StatusInProcess
)

func getAssignmentStatusStrings() map[AssignmentStatus]string {
	return map[AssignmentStatus]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "pendiente",
		StatusInProcess: "en proceso",
	}
}

// ParseAssignmentStatus converts a stored status string into an
// AssignmentStatus. Matching is case-insensitive.
func ParseAssignmentStatus(s string) (AssignmentStatus, error) {
	for status, name := range getAssignmentStatusStrings() {
		if status != StatusUnknown && strings.EqualFold(s, name) {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("assignmentStatus",
		fmt.Errorf("%q is not a known assignment status", s))
}

// Validate checks the status is one of the two valid states.
func (s AssignmentStatus) Validate() error {
	if s != StatusPending && s != StatusInProcess {
		return errs.NewValueIsInvalidErrorWithCause("assignmentStatus",
			fmt.Errorf("%d is not a valid assignment status", s))
	}
	return nil
}

// String returns the canonical lowercase Spanish name of the status.
func (s AssignmentStatus) String() string {
	if str, ok := getAssignmentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

package task

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment instance
	// was not created through NewAssignment or RestoreAssignment.
	ErrAssignmentIsNotConstructed = errors.New(
		"Assignment must be created via NewAssignment or RestoreAssignment")

	// ErrAssignmentIDAlreadyAssigned is returned when AssignID is called on
	// an assignment that already has a database identity.
	ErrAssignmentIDAlreadyAssigned = errors.New("assignment id is already assigned")
)

// Assignment is one (task, operator) pair. A task may fan out to several
// operators; each assignment is tracked independently and carries its own
// two-state workflow.
type Assignment struct {
	id         kernel.AssignmentID
	taskID     kernel.TaskID
	operatorID kernel.OperatorID
	assignedAt time.Time
	dueAt      *time.Time
	status     AssignmentStatus
	criteria   string

	isConstructed bool
}

// NewAssignment creates a pendiente assignment for an operator. The id
// stays zero until the repository inserts the row. The task id may also be
// zero at this point when the task is being created in the same
// transaction; the repository fills both after insert.
func NewAssignment(
	taskID kernel.TaskID,
	operatorID kernel.OperatorID,
	assignedAt time.Time,
	dueAt *time.Time,
	criteria string,
) (*Assignment, error) {
	if err := operatorID.Validate(); err != nil {
		return nil, err
	}
	if assignedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("assignedAt")
	}
	if dueAt != nil && dueAt.Before(assignedAt) {
		return nil, errs.NewValueIsInvalidError("dueAt precedes assignedAt")
	}

	return &Assignment{
		taskID:        taskID,
		operatorID:    operatorID,
		assignedAt:    assignedAt,
		dueAt:         dueAt,
		status:        StatusPending,
		criteria:      criteria,
		isConstructed: true,
	}, nil
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(
	id kernel.AssignmentID,
	taskID kernel.TaskID,
	operatorID kernel.OperatorID,
	assignedAt time.Time,
	dueAt *time.Time,
	status AssignmentStatus,
	criteria string,
) (*Assignment, error) {
	if err := errors.Join(
		id.Validate(),
		taskID.Validate(),
		operatorID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Assignment{
		id:            id,
		taskID:        taskID,
		operatorID:    operatorID,
		assignedAt:    assignedAt,
		dueAt:         dueAt,
		status:        status,
		criteria:      criteria,
		isConstructed: true,
	}, nil
}

// Validate ensures the Assignment instance was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// AssignID records the database-assigned identity after insert.
func (a *Assignment) AssignID(id kernel.AssignmentID) error {
	if a.id != 0 {
		return ErrAssignmentIDAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

// BindTask records the task identity once the task row exists. Used when
// task and assignment are created in the same transaction.
func (a *Assignment) BindTask(taskID kernel.TaskID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}
	a.taskID = taskID
	return nil
}

// ID returns the assignment identifier; zero until persisted.
func (a *Assignment) ID() kernel.AssignmentID {
	return a.id
}

// TaskID returns the task this assignment belongs to.
func (a *Assignment) TaskID() kernel.TaskID {
	return a.taskID
}

// OperatorID returns the operator the task was assigned to.
func (a *Assignment) OperatorID() kernel.OperatorID {
	return a.operatorID
}

// AssignedAt returns when the assignment was made.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// DueAt returns the optional deadline, or nil.
func (a *Assignment) DueAt() *time.Time {
	return a.dueAt
}

// Status returns the assignment's workflow status.
func (a *Assignment) Status() AssignmentStatus {
	return a.status
}

// EvaluationCriteria returns the free-text criteria the evidence will be
// judged against.
func (a *Assignment) EvaluationCriteria() string {
	return a.criteria
}

// SubmitEvidence flips the assignment to en proceso. Evidence is
// append-only: a second submission keeps the status at en proceso and is
// not an error.
func (a *Assignment) SubmitEvidence() {
	a.status = StatusInProcess
}

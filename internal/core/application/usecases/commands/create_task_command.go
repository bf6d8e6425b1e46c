package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateTaskCommandIsNotConstructed = errors.New(
	"CreateTaskCommand must be created via NewCreateTaskCommand constructor",
)

// CreateTaskCommand creates an operational task together with its first
// assignment. The two are inserted in one transaction: a task without an
// assignee is an invalid state and never becomes visible.
type CreateTaskCommand struct { //nolint:recvcheck //using for validation
	name       string
	taskType   string
	frequency  string
	createdBy  string
	operatorID kernel.OperatorID
	assignedAt time.Time
	dueAt      *time.Time
	criteria   string

	guard guard.ConstructorGuard
}

// NewCreateTaskCommand creates a command to create a task and assign it.
func NewCreateTaskCommand(
	name, taskType, frequency, createdBy string,
	operatorID kernel.OperatorID,
	assignedAt time.Time,
	dueAt *time.Time,
	criteria string,
) (CreateTaskCommand, error) {
	command := CreateTaskCommand{
		taskType:  taskType,
		frequency: frequency,
		criteria:  criteria,
		dueAt:     dueAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setCreatedBy(createdBy),
		command.setOperatorID(operatorID),
		command.setAssignedAt(assignedAt, dueAt),
	); err != nil {
		return CreateTaskCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTaskCommand) Validate() error {
	return c.guard.Validate(ErrCreateTaskCommandIsNotConstructed)
}

// Name returns the task name.
func (c CreateTaskCommand) Name() string {
	return c.name
}

// TaskType returns the free-text task category.
func (c CreateTaskCommand) TaskType() string {
	return c.taskType
}

// Frequency returns how often the task recurs.
func (c CreateTaskCommand) Frequency() string {
	return c.frequency
}

// CreatedBy returns who created the task.
func (c CreateTaskCommand) CreatedBy() string {
	return c.createdBy
}

// OperatorID returns who the task is assigned to.
func (c CreateTaskCommand) OperatorID() kernel.OperatorID {
	return c.operatorID
}

// AssignedAt returns when the assignment was made.
func (c CreateTaskCommand) AssignedAt() time.Time {
	return c.assignedAt
}

// DueAt returns the optional deadline.
func (c CreateTaskCommand) DueAt() *time.Time {
	return c.dueAt
}

// Criteria returns the evidence evaluation criteria.
func (c CreateTaskCommand) Criteria() string {
	return c.criteria
}

func (c *CreateTaskCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateTaskCommand) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValueIsRequiredError("createdBy")
	}

	c.createdBy = createdBy
	return nil
}

func (c *CreateTaskCommand) setOperatorID(operatorID kernel.OperatorID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}

func (c *CreateTaskCommand) setAssignedAt(assignedAt time.Time, dueAt *time.Time) error {
	if assignedAt.IsZero() {
		return errs.NewValueIsRequiredError("assignedAt")
	}
	if dueAt != nil && dueAt.Before(assignedAt) {
		return errs.NewValueIsInvalidError("dueAt precedes assignedAt")
	}

	c.assignedAt = assignedAt
	return nil
}

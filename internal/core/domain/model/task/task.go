package task

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrTaskIsNotConstructed is returned when a Task instance was not created
	// through NewTask or RestoreTask.
	ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask or RestoreTask")

	// ErrTaskIDAlreadyAssigned is returned when AssignID is called on a task
	// that already has a database identity.
	ErrTaskIDAlreadyAssigned = errors.New("task id is already assigned")
)

const maxNameLength = 100

// Task is an operational task handed out to warehouse operators. It is
// created together with its first assignment as one atomic unit; the task
// itself carries only descriptive fields and an overall status mirroring
// the assignment workflow.
type Task struct {
	id        kernel.TaskID
	name      string
	taskType  string
	frequency string
	createdBy string
	status    AssignmentStatus

	isConstructed bool
}

// NewTask creates a task in pendiente status. The id stays zero until the
// repository inserts the row and assigns the database identity.
func NewTask(name, taskType, frequency, createdBy string) (*Task, error) {
	task := &Task{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		task.setName(name),
		task.setTaskType(taskType),
		task.setFrequency(frequency),
		task.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return task, nil
}

// RestoreTask reconstructs a task from persistence.
func RestoreTask(
	id kernel.TaskID,
	name, taskType, frequency, createdBy string,
	status AssignmentStatus,
) (*Task, error) {
	task, err := NewTask(name, taskType, frequency, createdBy)
	if err != nil {
		return nil, err
	}
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	task.id = id
	task.status = status
	return task, nil
}

// Validate ensures the Task instance was properly constructed.
func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

// AssignID records the database-assigned identity after insert.
func (t *Task) AssignID(id kernel.TaskID) error {
	if t.id != 0 {
		return ErrTaskIDAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

// ID returns the task identifier; zero until the task is persisted.
func (t *Task) ID() kernel.TaskID {
	return t.id
}

// Name returns the task name.
func (t *Task) Name() string {
	return t.name
}

// TaskType returns the free-text task category.
func (t *Task) TaskType() string {
	return t.taskType
}

// Frequency returns how often the task recurs, as free text.
func (t *Task) Frequency() string {
	return t.frequency
}

// CreatedBy returns who created the task.
func (t *Task) CreatedBy() string {
	return t.createdBy
}

// Status returns the task's overall status.
func (t *Task) Status() AssignmentStatus {
	return t.status
}

func (t *Task) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name", len(name), 1, maxNameLength)
	}
	t.name = name
	return nil
}

func (t *Task) setTaskType(taskType string) error {
	if len(taskType) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("taskType", len(taskType), 0, maxNameLength)
	}
	t.taskType = taskType
	return nil
}

func (t *Task) setFrequency(frequency string) error {
	if len(frequency) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("frequency", len(frequency), 0, maxNameLength)
	}
	t.frequency = frequency
	return nil
}

func (t *Task) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValueIsRequiredError("createdBy")
	}
	if len(createdBy) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("createdBy", len(createdBy), 1, maxNameLength)
	}
	t.createdBy = createdBy
	return nil
}

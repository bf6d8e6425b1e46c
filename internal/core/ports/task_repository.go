package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for tasks, their
// assignments, and submitted evidence. Task and first assignment are
// inserted inside one unit of work so a failed assignment insert rolls the
// task back as well.
type TaskRepository interface {
	// AddTask persists a new task and fills its database-assigned id.
	AddTask(ctx context.Context, aggregate *task.Task) error

	// AddAssignment persists a new assignment and fills its
	// database-assigned id.
	AddAssignment(ctx context.Context, aggregate *task.Assignment) error

	// UpdateAssignment persists changes to an existing assignment.
	UpdateAssignment(ctx context.Context, aggregate *task.Assignment) error

	// GetFirstAssignmentByTask retrieves the earliest assignment of a task.
	// Returns an ObjectNotFound error when the task has no assignments.
	GetFirstAssignmentByTask(ctx context.Context, taskID kernel.TaskID) (*task.Assignment, error)

	// AddEvidence appends an evidence record. Evidence is never updated or
	// deleted.
	AddEvidence(ctx context.Context, evidence *task.Evidence) error
}

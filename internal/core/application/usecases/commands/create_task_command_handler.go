package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/task"
)

// CreateTaskCommandHandler inserts a task and its first assignment in one
// transaction. Any failure after the task insert rolls both back.
type CreateTaskCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewCreateTaskCommandHandler creates a handler for task creation.
func NewCreateTaskCommandHandler(uowFactory TaskUoWFactory) CreateTaskCommandHandler {
	return CreateTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes task creation and returns the created task's id.
func (h CreateTaskCommandHandler) Handle(ctx context.Context, command CreateTaskCommand) (*task.Task, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	newTask, err := task.NewTask(command.Name(), command.TaskType(), command.Frequency(), command.CreatedBy())
	if err != nil {
		return nil, err
	}

	assignment, err := task.NewAssignment(
		0, command.OperatorID(), command.AssignedAt(), command.DueAt(), command.Criteria())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TaskRepository()

	if err := repo.AddTask(ctx, newTask); err != nil {
		return nil, err
	}

	if err := assignment.BindTask(newTask.ID()); err != nil {
		return nil, err
	}

	if err := repo.AddAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newTask, nil
}

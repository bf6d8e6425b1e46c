package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/task"
)

// SubmitEvidenceCommandHandler appends an evidence record to a task's first
// assignment and flips the assignment to en proceso, in one transaction.
type SubmitEvidenceCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewSubmitEvidenceCommandHandler creates a handler for evidence
// submissions.
func NewSubmitEvidenceCommandHandler(uowFactory TaskUoWFactory) SubmitEvidenceCommandHandler {
	return SubmitEvidenceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the evidence submission. A task with no assignments
// surfaces as ObjectNotFound from the repository.
func (h SubmitEvidenceCommandHandler) Handle(ctx context.Context, command SubmitEvidenceCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TaskRepository()

	assignment, err := repo.GetFirstAssignmentByTask(ctx, command.TaskID())
	if err != nil {
		return err
	}

	evidence, err := task.NewEvidence(
		assignment.ID(),
		command.UploadedBy(),
		command.Link(),
		command.Notes(),
		command.FileType(),
		command.FileSize(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err := repo.AddEvidence(ctx, evidence); err != nil {
		return err
	}

	assignment.SubmitEvidence()
	if err := repo.UpdateAssignment(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

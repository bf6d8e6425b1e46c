package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSubmitEvidenceCommandIsNotConstructed = errors.New(
	"SubmitEvidenceCommand must be created via NewSubmitEvidenceCommand constructor",
)

// SubmitEvidenceCommand attaches proof-of-completion to a task's first
// assignment and moves the assignment to en proceso. Evidence is
// append-only; repeat submissions accumulate.
type SubmitEvidenceCommand struct { //nolint:recvcheck //using for validation
	taskID     kernel.TaskID
	uploadedBy string
	link       string
	notes      string
	fileType   string
	fileSize   int64

	guard guard.ConstructorGuard
}

// NewSubmitEvidenceCommand creates a command to submit evidence for a task.
// The link is an opaque blob-storage URL and is never interpreted.
func NewSubmitEvidenceCommand(
	taskID kernel.TaskID,
	uploadedBy, link, notes, fileType string,
	fileSize int64,
) (SubmitEvidenceCommand, error) {
	command := SubmitEvidenceCommand{
		notes:    notes,
		fileType: fileType,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTaskID(taskID),
		command.setUploadedBy(uploadedBy),
		command.setLink(link),
		command.setFileSize(fileSize),
	); err != nil {
		return SubmitEvidenceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitEvidenceCommand) Validate() error {
	return c.guard.Validate(ErrSubmitEvidenceCommandIsNotConstructed)
}

// TaskID returns the task the evidence belongs to.
func (c SubmitEvidenceCommand) TaskID() kernel.TaskID {
	return c.taskID
}

// UploadedBy returns who submitted the evidence.
func (c SubmitEvidenceCommand) UploadedBy() string {
	return c.uploadedBy
}

// Link returns the opaque blob storage URL.
func (c SubmitEvidenceCommand) Link() string {
	return c.link
}

// Notes returns the free-text notes attached to the submission.
func (c SubmitEvidenceCommand) Notes() string {
	return c.notes
}

// FileType returns the declared file type.
func (c SubmitEvidenceCommand) FileType() string {
	return c.fileType
}

// FileSize returns the declared file size in bytes.
func (c SubmitEvidenceCommand) FileSize() int64 {
	return c.fileSize
}

func (c *SubmitEvidenceCommand) setTaskID(taskID kernel.TaskID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *SubmitEvidenceCommand) setUploadedBy(uploadedBy string) error {
	if uploadedBy == "" {
		return errs.NewValueIsRequiredError("uploadedBy")
	}

	c.uploadedBy = uploadedBy
	return nil
}

func (c *SubmitEvidenceCommand) setLink(link string) error {
	if link == "" {
		return errs.NewValueIsRequiredError("link")
	}

	c.link = link
	return nil
}

func (c *SubmitEvidenceCommand) setFileSize(fileSize int64) error {
	if fileSize < 0 {
		return errs.NewValueIsInvalidError("fileSize")
	}

	c.fileSize = fileSize
	return nil
}

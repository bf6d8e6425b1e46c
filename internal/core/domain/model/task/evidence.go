package task

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrEvidenceIsNotConstructed is returned when an Evidence instance was not
// created through NewEvidence.
var ErrEvidenceIsNotConstructed = errors.New("Evidence must be created via NewEvidence")

// Evidence is one uploaded proof-of-completion artifact for an assignment.
// The link is an opaque URL into blob storage; the system stores and
// returns it without ever interpreting the file behind it. Evidence rows
// are append-only: submissions accumulate, nothing is replaced.
type Evidence struct {
	assignmentID kernel.AssignmentID
	uploadedBy   string
	link         string
	notes        string
	fileType     string
	fileSize     int64
	uploadedAt   time.Time

	isConstructed bool
}

// NewEvidence creates an evidence record for an assignment.
func NewEvidence(
	assignmentID kernel.AssignmentID,
	uploadedBy, link, notes, fileType string,
	fileSize int64,
	uploadedAt time.Time,
) (*Evidence, error) {
	if err := assignmentID.Validate(); err != nil {
		return nil, err
	}
	if uploadedBy == "" {
		return nil, errs.NewValueIsRequiredError("uploadedBy")
	}
	if link == "" {
		return nil, errs.NewValueIsRequiredError("link")
	}
	if fileSize < 0 {
		return nil, errs.NewValueIsInvalidError("fileSize")
	}
	if uploadedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("uploadedAt")
	}

	return &Evidence{
		assignmentID:  assignmentID,
		uploadedBy:    uploadedBy,
		link:          link,
		notes:         notes,
		fileType:      fileType,
		fileSize:      fileSize,
		uploadedAt:    uploadedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Evidence instance was properly constructed.
func (e *Evidence) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEvidenceIsNotConstructed
	}
	return nil
}

// AssignmentID returns the assignment the evidence belongs to.
func (e *Evidence) AssignmentID() kernel.AssignmentID {
	return e.assignmentID
}

// UploadedBy returns who submitted the evidence.
func (e *Evidence) UploadedBy() string {
	return e.uploadedBy
}

// Link returns the opaque blob storage URL.
func (e *Evidence) Link() string {
	return e.link
}

// Notes returns the free-text notes attached to the submission.
func (e *Evidence) Notes() string {
	return e.notes
}

// FileType returns the declared file type.
func (e *Evidence) FileType() string {
	return e.fileType
}

// FileSize returns the declared file size in bytes.
func (e *Evidence) FileSize() int64 {
	return e.fileSize
}

// UploadedAt returns when the evidence was submitted.
func (e *Evidence) UploadedAt() time.Time {
	return e.uploadedAt
}

package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrListTaskAssignmentsQueryIsNotConstructed = errors.New(
	"ListTaskAssignmentsQuery must be created via NewListTaskAssignmentsQuery constructor",
)

// ListTaskAssignmentsQuery retrieves one operator's task assignments in a
// given status, each joined with its task and the most recent evidence
// submitted for it. An assignment without evidence is a normal row, not
// an error.
//
//nolint:recvcheck //using for validation
type ListTaskAssignmentsQuery struct {
	operatorID int
	status     task.AssignmentStatus

	guard guard.ConstructorGuard
}

// NewListTaskAssignmentsQuery creates a query for an operator's assignment board.
func NewListTaskAssignmentsQuery(operatorID int, status task.AssignmentStatus) (ListTaskAssignmentsQuery, error) {
	var query ListTaskAssignmentsQuery
	query.guard = guard.NewConstructorGuard()

	err := errors.Join(
		query.setOperatorID(operatorID),
		query.setStatus(status),
	)
	if err != nil {
		return ListTaskAssignmentsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListTaskAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrListTaskAssignmentsQueryIsNotConstructed)
}

func (q ListTaskAssignmentsQuery) OperatorID() int {
	return q.operatorID
}

func (q ListTaskAssignmentsQuery) Status() task.AssignmentStatus {
	return q.status
}

func (q *ListTaskAssignmentsQuery) setOperatorID(operatorID int) error {
	if operatorID <= 0 {
		return errs.NewValueIsInvalidError("operatorId")
	}

	q.operatorID = operatorID

	return nil
}

func (q *ListTaskAssignmentsQuery) setStatus(status task.AssignmentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status

	return nil
}

type TaskAssignmentResponse struct {
	AssignmentID       int
	TaskID             int
	TaskName           string
	TaskType           string
	Frequency          string
	EvaluationCriteria string
	Status             string
	AssignedAt         time.Time
	DueAt              *time.Time
	LatestEvidence     *EvidenceResponse
}

type EvidenceResponse struct {
	EvidenceID int
	Link       string
	Notes      string
	FileType   string
	FileSize   int64
	UploadedBy string
	UploadedAt time.Time
}

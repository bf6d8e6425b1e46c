package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ListTaskAssignmentsQueryHandler retrieves one operator's assignment
// board, each row joined with its task and the newest evidence.
type ListTaskAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewListTaskAssignmentsQueryHandler creates a handler for assignment board queries.
func NewListTaskAssignmentsQueryHandler(db *gorm.DB) ListTaskAssignmentsQueryHandler {
	return ListTaskAssignmentsQueryHandler{db: db}
}

// Handle executes the query. The subquery picks the newest evidence row per
// assignment; assignments without evidence keep NULL evidence columns and
// a nil LatestEvidence.
func (h ListTaskAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query ListTaskAssignmentsQuery,
) ([]TaskAssignmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.task_id,
			t.name,
			t.task_type,
			t.frequency,
			a.evaluation_criteria,
			a.status,
			a.assigned_at,
			a.due_at,
			e.id,
			e.link,
			e.notes,
			e.file_type,
			e.file_size,
			e.uploaded_by,
			e.uploaded_at
		FROM task_assignments a
		JOIN tasks t ON t.id = a.task_id
		LEFT JOIN task_evidence e ON e.id = (
			SELECT e2.id
			FROM task_evidence e2
			WHERE e2.assignment_id = a.id
			ORDER BY e2.uploaded_at DESC, e2.id DESC
			LIMIT 1
		)
		WHERE a.operator_id = ? AND a.status = ?
		ORDER BY a.assigned_at, a.id
	`, query.OperatorID(), query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]TaskAssignmentResponse, 0)
	for rows.Next() {
		var assignmentResp TaskAssignmentResponse
		var evidenceID *int
		var link, notes, fileType, uploadedBy *string
		var fileSize *int64
		var uploadedAt *time.Time

		err = rows.Scan(
			&assignmentResp.AssignmentID,
			&assignmentResp.TaskID,
			&assignmentResp.TaskName,
			&assignmentResp.TaskType,
			&assignmentResp.Frequency,
			&assignmentResp.EvaluationCriteria,
			&assignmentResp.Status,
			&assignmentResp.AssignedAt,
			&assignmentResp.DueAt,
			&evidenceID,
			&link,
			&notes,
			&fileType,
			&fileSize,
			&uploadedBy,
			&uploadedAt,
		)
		if err != nil {
			return nil, err
		}

		if evidenceID != nil {
			assignmentResp.LatestEvidence = &EvidenceResponse{
				EvidenceID: *evidenceID,
				Link:       *link,
				Notes:      *notes,
				FileType:   *fileType,
				FileSize:   *fileSize,
				UploadedBy: *uploadedBy,
				UploadedAt: *uploadedAt,
			}
		}

		assignments = append(assignments, assignmentResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

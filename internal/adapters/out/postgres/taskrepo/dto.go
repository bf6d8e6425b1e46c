// Package taskrepo provides data transfer objects and mapping functions for
// task, assignment, and evidence persistence. Ids are database-assigned;
// the repository writes them back into the aggregates after insert so a
// task and its first assignment can be linked inside one transaction.
package taskrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"
)

// TaskDTO represents the database structure for persisting tasks.
type TaskDTO struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100)"`
	TaskType  string `gorm:"type:varchar(100)"`
	Frequency string `gorm:"type:varchar(100)"`
	CreatedBy string `gorm:"type:varchar(100)"`
	Status    string `gorm:"type:varchar(20)"`
}

// TableName specifies the database table name for tasks.
func (TaskDTO) TableName() string {
	return "tasks"
}

// AssignmentDTO represents the database structure for persisting task
// assignments. One task may fan out to several operators.
type AssignmentDTO struct {
	ID         int `gorm:"primaryKey;autoIncrement"`
	TaskID     int `gorm:"index;column:task_id"`
	OperatorID int `gorm:"index;column:operator_id"`
	AssignedAt time.Time
	DueAt      *time.Time
	Status     string `gorm:"type:varchar(20);index"`
	Criteria   string `gorm:"type:text;column:evaluation_criteria"`
}

// TableName specifies the database table name for assignments.
func (AssignmentDTO) TableName() string {
	return "task_assignments"
}

// EvidenceDTO represents the database structure for persisting evidence.
// Rows are append-only; there is no update path.
type EvidenceDTO struct {
	ID           int    `gorm:"primaryKey;autoIncrement"`
	AssignmentID int    `gorm:"index;column:assignment_id"`
	UploadedBy   string `gorm:"type:varchar(100)"`
	Link         string `gorm:"type:varchar(500)"`
	Notes        string `gorm:"type:text"`
	FileType     string `gorm:"type:varchar(50)"`
	FileSize     int64
	UploadedAt   time.Time
}

// TableName specifies the database table name for evidence.
func (EvidenceDTO) TableName() string {
	return "task_evidence"
}

func taskFromDomain(aggregate *task.Task) TaskDTO {
	return TaskDTO{
		ID:        aggregate.ID().Int(),
		Name:      aggregate.Name(),
		TaskType:  aggregate.TaskType(),
		Frequency: aggregate.Frequency(),
		CreatedBy: aggregate.CreatedBy(),
		Status:    aggregate.Status().String(),
	}
}

func assignmentFromDomain(aggregate *task.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:         aggregate.ID().Int(),
		TaskID:     aggregate.TaskID().Int(),
		OperatorID: aggregate.OperatorID().Int(),
		AssignedAt: aggregate.AssignedAt(),
		DueAt:      aggregate.DueAt(),
		Status:     aggregate.Status().String(),
		Criteria:   aggregate.EvaluationCriteria(),
	}
}

func evidenceFromDomain(evidence *task.Evidence) EvidenceDTO {
	return EvidenceDTO{
		AssignmentID: evidence.AssignmentID().Int(),
		UploadedBy:   evidence.UploadedBy(),
		Link:         evidence.Link(),
		Notes:        evidence.Notes(),
		FileType:     evidence.FileType(),
		FileSize:     evidence.FileSize(),
		UploadedAt:   evidence.UploadedAt(),
	}
}

func assignmentToDomain(dto AssignmentDTO) (*task.Assignment, error) {
	id, err := kernel.NewAssignmentID(dto.ID)
	if err != nil {
		return nil, err
	}

	taskID, err := kernel.NewTaskID(dto.TaskID)
	if err != nil {
		return nil, err
	}

	operatorID, err := kernel.NewOperatorID(dto.OperatorID)
	if err != nil {
		return nil, err
	}

	status, err := task.ParseAssignmentStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return task.RestoreAssignment(
		id, taskID, operatorID,
		dto.AssignedAt, dto.DueAt,
		status, dto.Criteria,
	)
}

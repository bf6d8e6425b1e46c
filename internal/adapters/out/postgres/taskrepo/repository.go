package taskrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code for unique constraint failures.
const uniqueViolation = "23505"

// GormTaskRepository implements TaskRepository using GORM.
type GormTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormTaskRepository creates a new GORM task repository.
func NewGormTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormTaskRepository {
	return &GormTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddTask saves a new task and writes the database-assigned id back into
// the aggregate.
func (r *GormTaskRepository) AddTask(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := taskFromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapInsertError("task", err)
	}

	taskID, err := kernel.NewTaskID(dto.ID)
	if err != nil {
		return err
	}
	if err := aggregate.AssignID(taskID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// AddAssignment saves a new assignment and writes the database-assigned id
// back into the aggregate.
func (r *GormTaskRepository) AddAssignment(ctx context.Context, aggregate *task.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := assignmentFromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapInsertError("assignment", err)
	}

	assignmentID, err := kernel.NewAssignmentID(dto.ID)
	if err != nil {
		return err
	}
	if err := aggregate.AssignID(assignmentID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// UpdateAssignment saves an existing assignment to the database.
func (r *GormTaskRepository) UpdateAssignment(ctx context.Context, aggregate *task.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := assignmentFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// GetFirstAssignmentByTask retrieves the earliest assignment of a task.
func (r *GormTaskRepository) GetFirstAssignmentByTask(ctx context.Context, taskID kernel.TaskID) (*task.Assignment, error) {
	if err := taskID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID.Int()).
		Order("id").
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", taskID.Int())
		}
		return nil, err
	}

	return assignmentToDomain(dto)
}

// AddEvidence appends an evidence record.
func (r *GormTaskRepository) AddEvidence(ctx context.Context, evidence *task.Evidence) error {
	if err := evidence.Validate(); err != nil {
		return err
	}

	dto := evidenceFromDomain(evidence)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapInsertError("evidence", err)
	}

	return nil
}

// mapInsertError turns postgres unique violations into StateConflict errors
// so duplicate inserts surface as conflicts rather than opaque SQL errors.
func mapInsertError(paramName string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errs.NewStateConflictErrorWithCause(paramName, "duplicate", "unique", err)
	}
	return err
}

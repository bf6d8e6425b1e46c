package linerepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/orderline"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLineRepository implements LineRepository using GORM.
type GormLineRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormLineRepository creates a new GORM line repository.
func NewGormLineRepository(db *gorm.DB, tracker aggregateTracker) *GormLineRepository {
	return &GormLineRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new line to the database.
func (r *GormLineRepository) Add(ctx context.Context, aggregate *orderline.Line) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing line to the database. The mutable ledger columns
// are written through a column map so a requested quantity of zero is not
// skipped as a zero value.
func (r *GormLineRepository) Update(ctx context.Context, aggregate *orderline.Line) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&LineDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"requested_quantity": dto.Requested,
			"picked_quantity":    dto.Picked,
			"packed_quantity":    dto.Packed,
			"box":                dto.Box,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("line", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a line by its identifier.
func (r *GormLineRepository) Get(ctx context.Context, id kernel.LineID) (*orderline.Line, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LineDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("line", id.Int())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves all lines of an order, ordered by sequence.
func (r *GormLineRepository) GetAllByOrder(ctx context.Context, orderNumber kernel.OrderNumber) ([]*orderline.Line, error) {
	if err := orderNumber.Validate(); err != nil {
		return nil, err
	}

	var dtos []LineDTO
	if err := r.db.WithContext(ctx).
		Where("order_number = ?", orderNumber.Int()).
		Order("sequence").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	lines := make([]*orderline.Line, 0, len(dtos))
	for _, dto := range dtos {
		line, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderNumber().String(), aggregate)
	return nil
}

// Update saves an existing order to the database. The write is conditional
// on the status the aggregate was loaded with: the row is only touched when
// its stored status still matches LoadedStatus. When the conditional write
// hits nothing the repository probes whether the order exists at all, and
// returns ObjectNotFound or StateConflict accordingly.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_number = ? AND status = ?", dto.OrderNumber, aggregate.LoadedStatus().String()).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		exists, err := r.Exists(ctx, aggregate.OrderNumber())
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewObjectNotFoundError("order", aggregate.OrderNumber().Int())
		}
		return errs.NewStateConflictError("order",
			"concurrently modified", aggregate.LoadedStatus().String())
	}

	r.tracker.TrackAggregate(aggregate.OrderNumber().String(), aggregate)
	return nil
}

// Get retrieves an order by its order number.
func (r *GormOrderRepository) Get(ctx context.Context, orderNumber kernel.OrderNumber) (*order.Order, error) {
	if err := orderNumber.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_number = ?", orderNumber.Int()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderNumber.Int())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether an order with the given number is stored.
func (r *GormOrderRepository) Exists(ctx context.Context, orderNumber kernel.OrderNumber) (bool, error) {
	if err := orderNumber.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_number = ?", orderNumber.Int()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

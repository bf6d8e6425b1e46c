// Package linerepo provides data transfer objects and mapping functions for
// order line persistence. Line ids come from the upstream order-entry
// system together with the lines themselves.
package linerepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/orderline"
)

// LineDTO represents the database structure for persisting line aggregates.
// The (order_number, sequence) pair is unique per order.
type LineDTO struct {
	ID          int     `gorm:"primaryKey;autoIncrement:false"`
	OrderNumber int     `gorm:"index;uniqueIndex:idx_order_sequence;column:order_number"`
	Sequence    int     `gorm:"uniqueIndex:idx_order_sequence"`
	Reference   string  `gorm:"type:varchar(100);index"`
	Description string  `gorm:"type:varchar(255)"`
	Requested   int     `gorm:"column:requested_quantity"`
	Picked      *int    `gorm:"column:picked_quantity"`
	Packed      *int    `gorm:"column:packed_quantity"`
	Box         *string `gorm:"type:varchar(100)"`
	UnitValue   float64
}

// TableName specifies the database table name for line entities.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts a line domain aggregate to its database representation.
func fromDomain(aggregate *orderline.Line) LineDTO {
	return LineDTO{
		ID:          aggregate.ID().Int(),
		OrderNumber: aggregate.OrderNumber().Int(),
		Sequence:    aggregate.Sequence(),
		Reference:   aggregate.Reference(),
		Description: aggregate.Description(),
		Requested:   aggregate.RequestedQuantity(),
		Picked:      aggregate.PickedQuantity(),
		Packed:      aggregate.PackedQuantity(),
		Box:         aggregate.Box(),
		UnitValue:   aggregate.UnitValue(),
	}
}

// toDomain converts a database DTO to a line domain aggregate.
func toDomain(dto LineDTO) (*orderline.Line, error) {
	id, err := kernel.NewLineID(dto.ID)
	if err != nil {
		return nil, err
	}

	orderNumber, err := kernel.NewOrderNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	return orderline.RestoreLine(
		id,
		orderNumber,
		dto.Sequence,
		dto.Reference, dto.Description,
		dto.Requested,
		dto.Picked, dto.Packed,
		dto.Box,
		dto.UnitValue,
	)
}

// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. Orders arrive from the upstream order-entry system
// with their number already assigned; the status column stores the Spanish
// canonical status string.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Status is indexed because every stage listing filters on it.
type OrderDTO struct {
	OrderNumber int     `gorm:"primaryKey;autoIncrement:false;column:order_number"`
	Status      string  `gorm:"type:varchar(50);index"`
	Picker      *string `gorm:"type:varchar(100)"`
	Packer      *string `gorm:"type:varchar(100)"`

	PickStartedAt  *time.Time
	PickFinishedAt *time.Time
	PackStartedAt  *time.Time
	PackFinishedAt *time.Time

	PickerNotes *string `gorm:"type:text"`
	PackerNotes *string `gorm:"type:text"`

	Customer   string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(100)"`
	Address    string `gorm:"type:varchar(255)"`
	Seller     string `gorm:"type:varchar(100)"`
	CreatedAt  time.Time
	OperatorID int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	details := aggregate.Details()

	return OrderDTO{
		OrderNumber:    aggregate.OrderNumber().Int(),
		Status:         aggregate.Status().String(),
		Picker:         aggregate.Picker(),
		Packer:         aggregate.Packer(),
		PickStartedAt:  aggregate.PickStartedAt(),
		PickFinishedAt: aggregate.PickFinishedAt(),
		PackStartedAt:  aggregate.PackStartedAt(),
		PackFinishedAt: aggregate.PackFinishedAt(),
		PickerNotes:    aggregate.PickerNotes(),
		PackerNotes:    aggregate.PackerNotes(),
		Customer:       details.Customer,
		City:           details.City,
		Address:        details.Address,
		Seller:         details.Seller,
		CreatedAt:      details.CreatedAt,
		OperatorID:     details.OperatorID,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, so stored rows are re-validated on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	orderNumber, err := kernel.NewOrderNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		orderNumber,
		status,
		dto.Picker, dto.Packer,
		dto.PickStartedAt, dto.PickFinishedAt, dto.PackStartedAt, dto.PackFinishedAt,
		dto.PickerNotes, dto.PackerNotes,
		order.Details{
			Customer:   dto.Customer,
			City:       dto.City,
			Address:    dto.Address,
			Seller:     dto.Seller,
			CreatedAt:  dto.CreatedAt,
			OperatorID: dto.OperatorID,
		},
	)
}

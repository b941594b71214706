// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its raw text value. The composite (status, deadline)
// index serves the status filter with the default deadline ordering.
type OrderDTO struct {
	ID         int64          `gorm:"primaryKey;autoIncrement"`
	CustomerID int64          `gorm:"not null;index"`
	OrderDate  time.Time      `gorm:"type:date;not null"`
	Deadline   time.Time      `gorm:"type:date;not null;index:idx_orders_status_deadline,priority:2"`
	ItemType   string         `gorm:"size:255;not null"`
	Status     string         `gorm:"size:20;not null;default:pending;index:idx_orders_status_deadline,priority:1"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:         aggregate.ID().Int64(),
		CustomerID: aggregate.CustomerID().Int64(),
		OrderDate:  aggregate.OrderDate().Time(),
		Deadline:   aggregate.Deadline().Time(),
		ItemType:   aggregate.ItemType(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
	if at := aggregate.DeletedAt(); at != nil {
		dto.DeletedAt = gorm.DeletedAt{Time: *at, Valid: true}
	}
	return dto
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if dto.DeletedAt.Valid {
		at := dto.DeletedAt.Time
		deletedAt = &at
	}

	return order.RestoreOrder(
		id,
		kernel.ID(dto.CustomerID),
		kernel.DateFromTime(dto.OrderDate),
		kernel.DateFromTime(dto.Deadline),
		dto.ItemType,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
		deletedAt,
	)
}

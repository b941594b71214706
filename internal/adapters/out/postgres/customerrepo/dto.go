// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
// It implements the repository pattern for the customer aggregate, handling
// the conversion between domain entities and database rows.
package customerrepo

import (
	"time"

	"tailor/internal/core/domain/model/customer"
	"tailor/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// PhoneIndexName is the partial unique index that keeps phones unique among
// live customers.
const PhoneIndexName = "idx_customers_phone_live"

// CustomerDTO represents the database structure for persisting customers.
// Soft-deleted rows keep their phone but drop out of the unique index.
type CustomerDTO struct {
	ID        int64          `gorm:"primaryKey;autoIncrement"`
	Name      string         `gorm:"size:255;not null;index"`
	Phone     *string        `gorm:"size:255;uniqueIndex:idx_customers_phone_live,where:deleted_at IS NULL"`
	Address   *string        `gorm:"type:text"`
	CreatedAt time.Time      `gorm:"not null;index"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	dto := CustomerDTO{
		ID:        aggregate.ID().Int64(),
		Name:      aggregate.Name(),
		Phone:     aggregate.Phone(),
		Address:   aggregate.Address(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
	if at := aggregate.DeletedAt(); at != nil {
		dto.DeletedAt = gorm.DeletedAt{Time: *at, Valid: true}
	}
	return dto
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if dto.DeletedAt.Valid {
		at := dto.DeletedAt.Time
		deletedAt = &at
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Phone, dto.Address, dto.CreatedAt, dto.UpdatedAt, deletedAt)
}

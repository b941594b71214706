package customerrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tailor/internal/core/domain/model/customer"
	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = pq.ErrorCode("23505")

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the customer and records the generated ID and timestamps.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateWriteError(aggregate, err)
	}

	if err := aggregate.MarkPersisted(kernel.ID(dto.ID), dto.CreatedAt, dto.UpdatedAt); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes name, phone and address. Nil phone or address clears the column.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.ID().Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.UpdatedAt = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "Phone", "Address", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return translateWriteError(aggregate, result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", aggregate.ID())
	}

	if err := aggregate.MarkPersisted(aggregate.ID(), aggregate.CreatedAt(), dto.UpdatedAt); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.ID, includeDeleted bool) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if includeDeleted {
		db = db.Unscoped()
	}

	var dto CustomerDTO
	if err := db.First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete soft-deletes the customer row.
func (r *GormCustomerRepository) Delete(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CustomerDTO{}, aggregate.ID().Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", aggregate.ID())
	}

	aggregate.MarkDeleted(time.Now().UTC())
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func translateWriteError(aggregate *customer.Customer, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == PhoneIndexName {
		phone := ""
		if p := aggregate.Phone(); p != nil {
			phone = *p
		}
		return errs.NewDuplicateValueErrorWithCause("phone", phone, err)
	}
	return fmt.Errorf("write customer: %w", err)
}

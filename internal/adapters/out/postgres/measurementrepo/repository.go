package measurementrepo

import (
	"context"
	"errors"
	"time"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/measurement"
	"tailor/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMeasurementRepository implements MeasurementRepository using GORM.
type GormMeasurementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormMeasurementRepository creates a new GORM measurement repository.
func NewGormMeasurementRepository(db *gorm.DB, tracker aggregateTracker) *GormMeasurementRepository {
	return &GormMeasurementRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormMeasurementRepository) Add(ctx context.Context, aggregate *measurement.Measurement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.MarkPersisted(kernel.ID(dto.ID), dto.CreatedAt, dto.UpdatedAt); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites every size column, so cleared sizes become NULL.
func (r *GormMeasurementRepository) Update(ctx context.Context, aggregate *measurement.Measurement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.ID().Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.UpdatedAt = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&MeasurementDTO{}).
		Where("id = ?", dto.ID).
		Select("Shoulder", "Chest", "Waist", "Sleeve", "OtherMeasurements", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("measurement", aggregate.ID())
	}

	if err := aggregate.MarkPersisted(aggregate.ID(), aggregate.CreatedAt(), dto.UpdatedAt); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormMeasurementRepository) Get(ctx context.Context, id kernel.ID) (*measurement.Measurement, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MeasurementDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("measurement", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the row; measurements are not soft-deleted.
func (r *GormMeasurementRepository) Delete(ctx context.Context, aggregate *measurement.Measurement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MeasurementDTO{}, aggregate.ID().Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("measurement", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

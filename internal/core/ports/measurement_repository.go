package ports

import (
	"context"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/measurement"
)

// MeasurementRepository defines the persistence contract for measurements.
// Measurements have no soft-delete column.
type MeasurementRepository interface {
	Add(ctx context.Context, aggregate *measurement.Measurement) error
	Update(ctx context.Context, aggregate *measurement.Measurement) error

	// Get returns ObjectNotFoundError when no row exists.
	Get(ctx context.Context, id kernel.ID) (*measurement.Measurement, error)

	// Delete removes the row permanently.
	Delete(ctx context.Context, aggregate *measurement.Measurement) error
}

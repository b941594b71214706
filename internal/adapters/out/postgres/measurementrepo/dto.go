// Package measurementrepo persists customer measurements. Named sizes get
// their own columns and free-form sizes are kept in a JSONB document.
package measurementrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/measurement"

	"gorm.io/datatypes"
)

// MeasurementDTO represents one row of the measurements table.
type MeasurementDTO struct {
	ID                int64 `gorm:"primaryKey;autoIncrement"`
	CustomerID        int64 `gorm:"not null;index"`
	Shoulder          *float64
	Chest             *float64
	Waist             *float64
	Sleeve            *float64
	OtherMeasurements datatypes.JSONMap
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName specifies the database table name for measurements.
func (MeasurementDTO) TableName() string {
	return "measurements"
}

func fromDomain(aggregate *measurement.Measurement) MeasurementDTO {
	values := aggregate.Values()

	var other datatypes.JSONMap
	if len(values.Other) > 0 {
		other = make(datatypes.JSONMap, len(values.Other))
		for name, size := range values.Other {
			other[name] = size
		}
	}

	return MeasurementDTO{
		ID:                aggregate.ID().Int64(),
		CustomerID:        aggregate.CustomerID().Int64(),
		Shoulder:          values.Shoulder,
		Chest:             values.Chest,
		Waist:             values.Waist,
		Sleeve:            values.Sleeve,
		OtherMeasurements: other,
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

func toDomain(dto MeasurementDTO) (*measurement.Measurement, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	other, err := decodeOther(dto.OtherMeasurements)
	if err != nil {
		return nil, err
	}

	return measurement.RestoreMeasurement(id, kernel.ID(dto.CustomerID), measurement.Values{
		Shoulder: dto.Shoulder,
		Chest:    dto.Chest,
		Waist:    dto.Waist,
		Sleeve:   dto.Sleeve,
		Other:    other,
	}, dto.CreatedAt, dto.UpdatedAt)
}

// decodeOther accepts the number shapes JSONMap can produce when scanning.
func decodeOther(raw datatypes.JSONMap) (map[string]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	other := make(map[string]float64, len(raw))
	for name, v := range raw {
		switch n := v.(type) {
		case float64:
			other[name] = n
		case json.Number:
			f, err := n.Float64()
			if err != nil {
				return nil, fmt.Errorf("other measurement %q: %w", name, err)
			}
			other[name] = f
		default:
			return nil, fmt.Errorf("other measurement %q has unexpected type %T", name, v)
		}
	}
	return other, nil
}

package commands

import (
	"errors"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/measurement"
	"tailor/internal/pkg/guard"

	"github.com/oapi-codegen/nullable"
)

var ErrUpdateMeasurementCommandIsNotConstructed = errors.New(
	"UpdateMeasurementCommand must be created via NewUpdateMeasurementCommand constructor",
)

// MeasurementPatch lists the sizes to change. A null size clears it; a null
// other map removes all free-form sizes; a set map replaces them.
type MeasurementPatch struct {
	Shoulder nullable.Nullable[float64]
	Chest    nullable.Nullable[float64]
	Waist    nullable.Nullable[float64]
	Sleeve   nullable.Nullable[float64]
	Other    nullable.Nullable[map[string]float64]
}

// Apply merges the patch into current and returns the result.
func (p MeasurementPatch) Apply(current measurement.Values) measurement.Values {
	merge := func(field nullable.Nullable[float64], existing *float64) *float64 {
		if !field.IsSpecified() {
			return existing
		}
		return patchedPtr(field)
	}

	next := measurement.Values{
		Shoulder: merge(p.Shoulder, current.Shoulder),
		Chest:    merge(p.Chest, current.Chest),
		Waist:    merge(p.Waist, current.Waist),
		Sleeve:   merge(p.Sleeve, current.Sleeve),
		Other:    current.Other,
	}
	if p.Other.IsSpecified() {
		next.Other, _ = patched(p.Other)
	}
	return next
}

// UpdateMeasurementCommand is a partial update of one measurement.
type UpdateMeasurementCommand struct { //nolint:recvcheck //using for validation
	measurementID kernel.ID
	patch         MeasurementPatch

	guard guard.ConstructorGuard
}

func NewUpdateMeasurementCommand(measurementID kernel.ID, patch MeasurementPatch) (UpdateMeasurementCommand, error) {
	if err := measurementID.Validate(); err != nil {
		return UpdateMeasurementCommand{}, err
	}

	return UpdateMeasurementCommand{
		measurementID: measurementID,
		patch:         patch,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateMeasurementCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMeasurementCommandIsNotConstructed)
}

func (c UpdateMeasurementCommand) MeasurementID() kernel.ID { return c.measurementID }
func (c UpdateMeasurementCommand) Patch() MeasurementPatch  { return c.patch }

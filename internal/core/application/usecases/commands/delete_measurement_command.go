package commands

import (
	"errors"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/pkg/guard"
)

var ErrDeleteMeasurementCommandIsNotConstructed = errors.New(
	"DeleteMeasurementCommand must be created via NewDeleteMeasurementCommand constructor",
)

// DeleteMeasurementCommand asks to remove one measurement permanently.
type DeleteMeasurementCommand struct { //nolint:recvcheck //using for validation
	measurementID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteMeasurementCommand(measurementID kernel.ID) (DeleteMeasurementCommand, error) {
	if err := measurementID.Validate(); err != nil {
		return DeleteMeasurementCommand{}, err
	}

	return DeleteMeasurementCommand{
		measurementID: measurementID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteMeasurementCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMeasurementCommandIsNotConstructed)
}

func (c DeleteMeasurementCommand) MeasurementID() kernel.ID { return c.measurementID }

package commands

import (
	"errors"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/measurement"
	"tailor/internal/pkg/guard"
)

var ErrCreateMeasurementCommandIsNotConstructed = errors.New(
	"CreateMeasurementCommand must be created via NewCreateMeasurementCommand constructor",
)

// CreateMeasurementCommand records a new set of sizes for a customer.
type CreateMeasurementCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	values     measurement.Values

	guard guard.ConstructorGuard
}

func NewCreateMeasurementCommand(customerID kernel.ID, values measurement.Values) (CreateMeasurementCommand, error) {
	if err := customerID.Validate(); err != nil {
		return CreateMeasurementCommand{}, err
	}

	return CreateMeasurementCommand{
		customerID: customerID,
		values:     values,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMeasurementCommand) Validate() error {
	return c.guard.Validate(ErrCreateMeasurementCommandIsNotConstructed)
}

func (c CreateMeasurementCommand) CustomerID() kernel.ID      { return c.customerID }
func (c CreateMeasurementCommand) Values() measurement.Values { return c.values }

package commands

import (
	"context"

	"tailor/internal/core/domain/model/measurement"
)

// CreateMeasurementCommandHandler stores measurements for live customers.
type CreateMeasurementCommandHandler struct {
	uowFactory MeasurementUoWFactory
}

func NewCreateMeasurementCommandHandler(uowFactory MeasurementUoWFactory) CreateMeasurementCommandHandler {
	return CreateMeasurementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the sizes, checks the customer exists and inserts the row.
func (h *CreateMeasurementCommandHandler) Handle(
	ctx context.Context, cmd CreateMeasurementCommand,
) (*measurement.Measurement, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	m, err := measurement.NewMeasurement(cmd.CustomerID(), cmd.Values())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.CustomerRepository().Get(ctx, cmd.CustomerID(), false); err != nil {
		return nil, err
	}

	if err = uow.MeasurementRepository().Add(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return m, nil
}

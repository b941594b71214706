package commands

import (
	"context"

	"tailor/internal/core/domain/model/measurement"
)

// UpdateMeasurementCommandHandler applies partial updates to measurements.
type UpdateMeasurementCommandHandler struct {
	uowFactory MeasurementUoWFactory
}

func NewUpdateMeasurementCommandHandler(uowFactory MeasurementUoWFactory) UpdateMeasurementCommandHandler {
	return UpdateMeasurementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the measurement, merges the patch and writes it back. Invalid
// sizes leave the stored row untouched.
func (h *UpdateMeasurementCommandHandler) Handle(
	ctx context.Context, cmd UpdateMeasurementCommand,
) (*measurement.Measurement, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MeasurementRepository()
	m, err := repo.Get(ctx, cmd.MeasurementID())
	if err != nil {
		return nil, err
	}

	if err = m.Replace(cmd.Patch().Apply(m.Values())); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return m, nil
}

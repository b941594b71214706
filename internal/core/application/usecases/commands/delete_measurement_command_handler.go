package commands

import (
	"context"
)

// DeleteMeasurementCommandHandler removes measurements. There is no business
// gate on measurement deletion.
type DeleteMeasurementCommandHandler struct {
	uowFactory MeasurementUoWFactory
}

func NewDeleteMeasurementCommandHandler(uowFactory MeasurementUoWFactory) DeleteMeasurementCommandHandler {
	return DeleteMeasurementCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteMeasurementCommandHandler) Handle(ctx context.Context, cmd DeleteMeasurementCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MeasurementRepository()
	m, err := repo.Get(ctx, cmd.MeasurementID())
	if err != nil {
		return err
	}

	if err = repo.Delete(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

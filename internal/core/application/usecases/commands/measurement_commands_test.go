package commands_test

import (
	"testing"

	"tailor/internal/core/application/usecases/commands"
	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/measurement"
	"tailor/internal/pkg/errs"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestCreateMeasurementCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateMeasurementCommand(1, measurement.Values{Chest: f64(96), Other: map[string]float64{"hip": 100}})
	require.NoError(t, err)

	customers := new(MockCustomerRepository)
	measurements := new(MockMeasurementRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Get", ctx, kernel.ID(1), false).Return(mustCustomer(1, "Alice"), nil).Once(),
		uow.On("MeasurementRepository").Return(measurements).Once(),
		measurements.On("Add", ctx, mock.AnythingOfType("*measurement.Measurement")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
)
	factory := new(MockMeasurementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateMeasurementCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.InDelta(t, 96, *created.Values().Chest, 0.001)
	measurements.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateMeasurementCommandHandler_Handle_NegativeValue(t *testing.T) {
	cmd, err := commands.NewCreateMeasurementCommand(1, measurement.Values{Waist: f64(-1)})
	require.NoError(t, err)

	factory := new(MockMeasurementUoWFactory)
	h := commands.NewCreateMeasurementCommandHandler(factory)
	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateMeasurementCommandHandler_Handle_MissingCustomer(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateMeasurementCommand(9, measurement.Values{})

	customers := new(MockCustomerRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(customers).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	customers.On("Get", ctx, kernel.ID(9), false).Return(nil, errs.NewObjectNotFoundError("customer", 9)).Once()
	factory := new(MockMeasurementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateMeasurementCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "MeasurementRepository")
}

func TestMeasurementPatch_Apply(t *testing.T) {
	current := measurement.Values{
		Shoulder: f64(45),
		Chest:    f64(96),
		Other:    map[string]float64{"hip": 100},
	}

	next := commands.MeasurementPatch{
		Shoulder: nullable.NewNullNullable[float64](),
		Waist:    nullable.NewNullableWithValue(82.0),
	}.Apply(current)

	assert.Nil(t, next.Shoulder)
	assert.InDelta(t, 96, *next.Chest, 0.001)
	assert.InDelta(t, 82, *next.Waist, 0.001)
	assert.Nil(t, next.Sleeve)
	assert.Equal(t, map[string]float64{"hip": 100}, next.Other)

	cleared := commands.MeasurementPatch{Other: nullable.NewNullNullable[map[string]float64]()}.Apply(current)
	assert.Nil(t, cleared.Other)
}

func TestUpdateMeasurementCommandHandler_Handle_InvalidLeavesRowAlone(t *testing.T) {
	ctx := t.Context()
	existing, err := measurement.RestoreMeasurement(6, 1, measurement.Values{Chest: f64(96)}, fixedTime, fixedTime)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateMeasurementCommand(6, commands.MeasurementPatch{Chest: nullable.NewNullableWithValue(-3.0)})
	require.NoError(t, err)

	measurements := new(MockMeasurementRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MeasurementRepository").Return(measurements).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	measurements.On("Get", ctx, kernel.ID(6)).Return(existing, nil).Once()
	factory := new(MockMeasurementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateMeasurementCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.InDelta(t, 96, *existing.Values().Chest, 0.001)
	measurements.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteMeasurementCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	existing, err := measurement.RestoreMeasurement(6, 1, measurement.Values{}, fixedTime, fixedTime)
	require.NoError(t, err)
	cmd, err := commands.NewDeleteMeasurementCommand(6)
	require.NoError(t, err)

	measurements := new(MockMeasurementRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MeasurementRepository").Return(measurements).Once(),
		measurements.On("Get", ctx, kernel.ID(6)).Return(existing, nil).Once(),
		measurements.On("Delete", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
)
	factory := new(MockMeasurementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteMeasurementCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	measurements.AssertExpectations(t)
	uow.AssertExpectations(t)
}

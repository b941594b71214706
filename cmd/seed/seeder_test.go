package main

import (
	"context"
	"errors"
	"testing"

	"tailor/internal/core/application/usecases/commands"
	"tailor/internal/core/domain/model/customer"
	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/measurement"
	"tailor/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCustomers struct {
	created []commands.CreateCustomerCommand
}

func (f *fakeCustomers) Handle(_ context.Context, cmd commands.CreateCustomerCommand) (*customer.Customer, error) {
	f.created = append(f.created, cmd)
	c, err := customer.NewCustomer(cmd.Name(), cmd.Phone(), cmd.Address())
	if err != nil {
		return nil, err
	}
	id, _ := kernel.NewID(int64(len(f.created)))
	return c, c.MarkPersisted(id, c.CreatedAt(), c.UpdatedAt())
}

type fakeMeasurements struct {
	values []measurement.Values
}

func (f *fakeMeasurements) Handle(
	_ context.Context, cmd commands.CreateMeasurementCommand,
) (*measurement.Measurement, error) {
	f.values = append(f.values, cmd.Values())
	return measurement.NewMeasurement(cmd.CustomerID(), cmd.Values())
}

type fakeOrders struct {
	created []*order.Order
	err     error
}

func (f *fakeOrders) Handle(_ context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	o, err := order.NewOrder(cmd.CustomerID(), cmd.OrderDate(), cmd.Deadline(), cmd.ItemType())
	if err != nil {
		return nil, err
	}
	f.created = append(f.created, o)
	return o, nil
}

func TestSeeder_Seed(t *testing.T) {
	customers := &fakeCustomers{}
	measurements := &fakeMeasurements{}
	orders := &fakeOrders{}
	seeder := NewSeeder(customers, measurements, orders, zap.NewNop())

	created, err := seeder.Seed(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 15, created)
	assert.Len(t, customers.created, 3)
	require.Len(t, measurements.values, 3)
	require.Len(t, orders.created, 15)

	for _, v := range measurements.values {
		require.NotNil(t, v.Shoulder)
		assert.GreaterOrEqual(t, *v.Shoulder, 30.0)
		assert.LessOrEqual(t, *v.Shoulder, 50.0)
		assert.Contains(t, v.Other, "hip")
		assert.Contains(t, v.Other, "inseam")
	}
	for _, o := range orders.created {
		assert.True(t, o.Deadline().After(o.OrderDate()))
		assert.Contains(t, []string{"Shirt", "Pants", "Suit", "Dress"}, o.ItemType())
	}
}

func TestSeeder_Seed_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	seeder := NewSeeder(&fakeCustomers{}, &fakeMeasurements{}, &fakeOrders{err: boom}, zap.NewNop())

	created, err := seeder.Seed(context.Background(), 2)

	require.ErrorIs(t, err, boom)
	assert.Zero(t, created)
}

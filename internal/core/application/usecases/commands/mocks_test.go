package commands_test

import (
	"context"

	"tailor/internal/core/application/usecases/commands"
	"tailor/internal/core/domain/model/customer"
	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/measurement"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.ID, includeDeleted bool) (*customer.Customer, error) {
	args := m.Called(ctx, id, includeDeleted)
	if c, ok := args.Get(0).(*customer.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID, includeDeleted bool) (*order.Order, error) {
	args := m.Called(ctx, id, includeDeleted)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) CountActiveByCustomer(ctx context.Context, customerID kernel.ID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockMeasurementRepository struct{ mock.Mock }

func (m *MockMeasurementRepository) Add(ctx context.Context, v *measurement.Measurement) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockMeasurementRepository) Update(ctx context.Context, v *measurement.Measurement) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockMeasurementRepository) Get(ctx context.Context, id kernel.ID) (*measurement.Measurement, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*measurement.Measurement); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMeasurementRepository) Delete(ctx context.Context, v *measurement.Measurement) error {
	return m.Called(ctx, v).Error(0)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) MeasurementRepository() ports.MeasurementRepository {
	return m.Called().Get(0).(ports.MeasurementRepository)
}

func (m *MockUoW) TrackedAggregates() []any {
	return m.Called().Get(0).([]any)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	return m.Called().Get(0).(commands.CustomerUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockMeasurementUoWFactory struct{ mock.Mock }

func (m *MockMeasurementUoWFactory) Create() commands.MeasurementUoW {
	return m.Called().Get(0).(commands.MeasurementUoW)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishStatusChanged(ctx context.Context, event order.StatusChanged) error {
	return m.Called(ctx, event).Error(0)
}

func strPtr(s string) *string { return &s }

func mustCustomer(id kernel.ID, name string) *customer.Customer {
	c, err := customer.RestoreCustomer(id, name, nil, nil, fixedTime, fixedTime, nil)
	if err != nil {
		panic(err)
	}
	return c
}

func mustOrder(id kernel.ID, status order.Status) *order.Order {
	o, err := order.RestoreOrder(id, 1, kernel.NewDate(2024, 1, 1), kernel.NewDate(2024, 1, 10), "Shirt",
		status, fixedTime, fixedTime, nil)
	if err != nil {
		panic(err)
	}
	return o
}

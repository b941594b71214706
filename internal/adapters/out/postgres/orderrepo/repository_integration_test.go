package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"tailor/internal/adapters/out/postgres/customerrepo"
	"tailor/internal/adapters/out/postgres/orderrepo"
	"tailor/internal/adapters/out/postgres/pgtest"
	"tailor/internal/core/domain/model/customer"
	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	customerID kernel.ID
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)

	owner, err := customer.NewCustomer("Alice", nil, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(customerrepo.NewGormCustomerRepository(suite.db, suite.tracker).Add(context.Background(), owner))
	suite.customerID = owner.ID()
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsIdentity() {
	ctx := context.Background()
	o := suite.newOrder("2024-01-01", "2024-01-10")

	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.False(o.ID().IsZero())
	suite.False(o.CreatedAt().IsZero())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Fails() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()
	o := suite.newOrder("2024-02-28", "2024-03-01")
	suite.Require().NoError(o.ChangeStatus(order.Processing))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID(), false)
	suite.Require().NoError(err)

	suite.Equal(o.ID(), got.ID())
	suite.Equal(suite.customerID, got.CustomerID())
	suite.Equal("2024-02-28", got.OrderDate().String())
	suite.Equal("2024-03-01", got.Deadline().String())
	suite.Equal("Shirt", got.ItemType())
	suite.Equal(order.Processing, got.Status())
	suite.False(got.IsDeleted())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	got, err := suite.repository.Get(context.Background(), 4242, false)

	suite.Nil(got)
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsChanges() {
	ctx := context.Background()
	o := suite.newOrder("2024-01-01", "2024-01-10")
	suite.Require().NoError(suite.repository.Add(ctx, o))
	createdAt := o.CreatedAt()

	suite.Require().NoError(o.ChangeStatus(order.Ready))
	suite.Require().NoError(o.Retype("Suit"))
	suite.Require().NoError(o.Reschedule(kernel.NewDate(2024, 1, 5), kernel.NewDate(2024, 2, 1)))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID(), false)
	suite.Require().NoError(err)
	suite.Equal(order.Ready, got.Status())
	suite.Equal("Suit", got.ItemType())
	suite.Equal("2024-01-05", got.OrderDate().String())
	suite.Equal("2024-02-01", got.Deadline().String())
	suite.WithinDuration(createdAt, got.CreatedAt(), time.Millisecond)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	o, err := order.RestoreOrder(777, suite.customerID, kernel.NewDate(2024, 1, 1), kernel.NewDate(2024, 1, 2),
		"Pants", order.Pending, time.Now(), time.Now(), nil)
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), o)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_SoftDeletes() {
	ctx := context.Background()
	o := suite.newOrder("2024-01-01", "2024-01-10")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(suite.repository.Delete(ctx, o))
	suite.True(o.IsDeleted())

	_, err := suite.repository.Get(ctx, o.ID(), false)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	got, err := suite.repository.Get(ctx, o.ID(), true)
	suite.Require().NoError(err)
	suite.True(got.IsDeleted())

	suite.Require().ErrorIs(suite.repository.Delete(ctx, o), errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountActiveByCustomer() {
	ctx := context.Background()

	for _, status := range []order.Status{order.Pending, order.Processing, order.Ready, order.Pending} {
		o := suite.newOrder("2024-01-01", "2024-01-10")
		suite.Require().NoError(o.ChangeStatus(status))
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	count, err := suite.repository.CountActiveByCustomer(ctx, suite.customerID)
	suite.Require().NoError(err)
	suite.Equal(int64(3), count)

	deleted := suite.newOrder("2024-01-01", "2024-01-10")
	suite.Require().NoError(suite.repository.Add(ctx, deleted))
	suite.Require().NoError(suite.repository.Delete(ctx, deleted))

	count, err = suite.repository.CountActiveByCustomer(ctx, suite.customerID)
	suite.Require().NoError(err)
	suite.Equal(int64(3), count, "soft-deleted orders do not count")

	count, err = suite.repository.CountActiveByCustomer(ctx, suite.customerID+1000)
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(orderDate, deadline string) *order.Order {
	od, err := kernel.ParseDate(orderDate)
	suite.Require().NoError(err)
	dl, err := kernel.ParseDate(deadline)
	suite.Require().NoError(err)

	o, err := order.NewOrder(suite.customerID, od, dl, "Shirt")
	suite.Require().NoError(err)
	return o
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Unscoped().Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

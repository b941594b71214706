package cmd

import (
	"time"

	httpin "tailor/internal/adapters/in/http"
	"tailor/internal/adapters/out/kafka"
	"tailor/internal/adapters/out/postgres"
	"tailor/internal/core/application/usecases/commands"
	"tailor/internal/core/application/usecases/queries"
	"tailor/internal/core/ports"
	"tailor/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventPublisher is an order event publisher that owns a connection.
type EventPublisher interface {
	ports.OrderEventPublisher
	Close() error
}

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  EventPublisher
	logger     *zap.Logger
	now        func() time.Time
}

// NewCompositionRoot wires the application. A Kafka publisher is used when
// KAFKA_HOST is configured, otherwise status events are dropped.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	var publisher EventPublisher = kafka.NopPublisher{}
	if config.KafkaHost != "" {
		p, err := kafka.NewOrderEventPublisher(kafka.Config{
			Broker: config.KafkaHost,
			Topic:  config.KafkaOrderChangedTopic,
		}, logger.Named("order_events"))
		if err != nil {
			return nil, err
		}
		publisher = p
	} else {
		logger.Info("kafka is not configured, order events will not be published")
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// Close releases the resources owned by the root.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) measurementUoWFactory() commands.MeasurementUoWFactory {
	return FuncMeasurementUoWFactory(func() commands.MeasurementUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateCreateMeasurementCommandHandler() commands.CreateMeasurementCommandHandler {
	return commands.NewCreateMeasurementCommandHandler(c.measurementUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMeasurementCommandHandler() commands.UpdateMeasurementCommandHandler {
	return commands.NewUpdateMeasurementCommandHandler(c.measurementUoWFactory())
}

func (c *CompositionRoot) CreateDeleteMeasurementCommandHandler() commands.DeleteMeasurementCommandHandler {
	return commands.NewDeleteMeasurementCommandHandler(c.measurementUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger.Named("update_order"))
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher, c.logger.Named("change_order_status"))
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateListCustomersQueryHandler() queries.ListCustomersQueryHandler {
	return queries.NewListCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomersForSelectionQueryHandler() queries.ListCustomersForSelectionQueryHandler {
	return queries.NewListCustomersForSelectionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerGrowthQueryHandler() queries.GetCustomerGrowthQueryHandler {
	return queries.NewGetCustomerGrowthQueryHandler(c.gormDB, c.now)
}

func (c *CompositionRoot) CreateListMeasurementsByCustomerQueryHandler() queries.ListMeasurementsByCustomerQueryHandler {
	return queries.NewListMeasurementsByCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDueOrdersQueryHandler() queries.GetDueOrdersQueryHandler {
	return queries.NewGetDueOrdersQueryHandler(c.gormDB, c.now)
}

// CreateHTTPHandlers collects every use case the HTTP server exposes.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	createCustomer := c.CreateCreateCustomerCommandHandler()
	updateCustomer := c.CreateUpdateCustomerCommandHandler()
	deleteCustomer := c.CreateDeleteCustomerCommandHandler()
	createMeasurement := c.CreateCreateMeasurementCommandHandler()
	updateMeasurement := c.CreateUpdateMeasurementCommandHandler()
	deleteMeasurement := c.CreateDeleteMeasurementCommandHandler()
	createOrder := c.CreateCreateOrderCommandHandler()
	updateOrder := c.CreateUpdateOrderCommandHandler()
	changeStatus := c.CreateChangeOrderStatusCommandHandler()
	deleteOrder := c.CreateDeleteOrderCommandHandler()

	return httpin.Handlers{
		CreateCustomer:    &createCustomer,
		UpdateCustomer:    &updateCustomer,
		DeleteCustomer:    &deleteCustomer,
		CreateMeasurement: &createMeasurement,
		UpdateMeasurement: &updateMeasurement,
		DeleteMeasurement: &deleteMeasurement,
		CreateOrder:       &createOrder,
		UpdateOrder:       &updateOrder,
		ChangeOrderStatus: &changeStatus,
		DeleteOrder:       &deleteOrder,

		ListCustomers:             c.CreateListCustomersQueryHandler(),
		ListCustomersForSelection: c.CreateListCustomersForSelectionQueryHandler(),
		GetCustomer:               c.CreateGetCustomerQueryHandler(),
		GetCustomerGrowth:         c.CreateGetCustomerGrowthQueryHandler(),
		ListMeasurements:          c.CreateListMeasurementsByCustomerQueryHandler(),
		ListOrders:                c.CreateListOrdersQueryHandler(),
		GetOrder:                  c.CreateGetOrderQueryHandler(),
		GetOrderSummary:           c.CreateGetOrderSummaryQueryHandler(),
	}
}

// CreateJobManager builds the background jobs.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(jobs.Config{
		DeadlineReminderSpec: c.config.DeadlineReminderCron,
		DeadlineReminderDays: c.config.DeadlineReminderDays,
		Now:                  c.now,
	}, c.CreateGetDueOrdersQueryHandler(), c.logger)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMeasurementUoWFactory func() commands.MeasurementUoW

func (f FuncMeasurementUoWFactory) Create() commands.MeasurementUoW {
	return f()
}

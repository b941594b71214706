package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tailor/internal/core/application/usecases/commands"
	"tailor/internal/core/domain/model/customer"
	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/measurement"
	"tailor/internal/core/domain/model/order"

	"github.com/Pallinder/go-randomdata"
	"go.uber.org/zap"
)

const (
	ordersPerCustomer = 5
	itemTypesSample   = "Shirt,Pants,Suit,Dress"
)

type customerCreator interface {
	Handle(ctx context.Context, cmd commands.CreateCustomerCommand) (*customer.Customer, error)
}

type measurementCreator interface {
	Handle(ctx context.Context, cmd commands.CreateMeasurementCommand) (*measurement.Measurement, error)
}

type orderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

// Seeder fills the store with random customers, one measurement set each
// and a handful of orders, all through the regular command handlers.
type Seeder struct {
	customers    customerCreator
	measurements measurementCreator
	orders       orderCreator
	logger       *zap.Logger
	now          func() time.Time
}

func NewSeeder(customers customerCreator, measurements measurementCreator, orders orderCreator, logger *zap.Logger) *Seeder {
	return &Seeder{
		customers:    customers,
		measurements: measurements,
		orders:       orders,
		logger:       logger,
		now:          time.Now,
	}
}

// Seed creates count customers and returns how many orders were written.
func (s *Seeder) Seed(ctx context.Context, count int) (int, error) {
	orders := 0
	for i := 0; i < count; i++ {
		c, err := s.seedCustomer(ctx)
		if err != nil {
			return orders, fmt.Errorf("seed customer %d: %w", i+1, err)
		}
		if err = s.seedMeasurement(ctx, c.ID()); err != nil {
			return orders, fmt.Errorf("seed measurement of customer %d: %w", c.ID(), err)
		}
		for j := 0; j < ordersPerCustomer; j++ {
			if err = s.seedOrder(ctx, c.ID()); err != nil {
				return orders, fmt.Errorf("seed order of customer %d: %w", c.ID(), err)
			}
			orders++
		}
		s.logger.Debug("customer seeded", zap.Int64("customer_id", c.ID().Int64()))
	}
	return orders, nil
}

func (s *Seeder) seedCustomer(ctx context.Context) (*customer.Customer, error) {
	phone := randomdata.PhoneNumber()
	address := strings.ReplaceAll(randomdata.Address(), "\n", ", ")

	cmd, err := commands.NewCreateCustomerCommand(randomdata.FullName(randomdata.RandomGender), &phone, &address)
	if err != nil {
		return nil, err
	}
	return s.customers.Handle(ctx, cmd)
}

func (s *Seeder) seedMeasurement(ctx context.Context, customerID kernel.ID) error {
	cmd, err := commands.NewCreateMeasurementCommand(customerID, measurement.Values{
		Shoulder: size(30, 50),
		Chest:    size(70, 120),
		Waist:    size(60, 110),
		Sleeve:   size(50, 70),
		Other: map[string]float64{
			"hip":    *size(80, 130),
			"inseam": *size(70, 90),
		},
	})
	if err != nil {
		return err
	}
	_, err = s.measurements.Handle(ctx, cmd)
	return err
}

func (s *Seeder) seedOrder(ctx context.Context, customerID kernel.ID) error {
	orderDate := kernel.DateFromTime(s.now().UTC()).AddDays(-randomdata.Number(0, 365))
	deadline := orderDate.AddDays(randomdata.Number(1, 61))
	status := order.AllStatuses()[randomdata.Number(len(order.AllStatuses()))]

	cmd, err := commands.NewCreateOrderCommand(
		customerID,
		orderDate,
		deadline,
		randomdata.StringSample(strings.Split(itemTypesSample, ",")...),
		status.String(),
	)
	if err != nil {
		return err
	}
	_, err = s.orders.Handle(ctx, cmd)
	return err
}

func size(lo, hi int) *float64 {
	v := randomdata.Decimal(lo, hi, 1)
	return &v
}

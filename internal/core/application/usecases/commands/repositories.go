// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"tailor/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AggregateTracker exposes the aggregates written within a transaction.
	AggregateTracker interface {
		TrackedAggregates() []any
	}

	// MeasurementRepoFactory provides access to the measurement repository within a transaction.
	MeasurementRepoFactory interface {
		MeasurementRepository() ports.MeasurementRepository
	}

	// CustomerUoW manages transactions for customer commands. Orders are
	// reachable because deletion depends on them.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
		OrderRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// OrderUoW manages transactions for order commands. Customers are
	// reachable because every order must point at a live customer.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   owner, err := uow.CustomerRepository().Get(ctx, customerID, false)
	//   // ... build the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		AggregateTracker
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// MeasurementUoW manages transactions for measurement commands.
	MeasurementUoW interface {
		TxManager
		MeasurementRepoFactory
		CustomerRepoFactory
	}

	// MeasurementUoWFactory creates new measurement unit of work instances.
	MeasurementUoWFactory interface {
		Create() MeasurementUoW
	}
)

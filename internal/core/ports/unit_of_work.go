package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command so concurrent
// requests never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one database transaction plus the repositories bound to it.
// Callers begin it, defer Rollback and commit on success.
type UnitOfWork interface {
	// Begin opens the transaction. Calling it twice is a no-op.
	Begin(ctx context.Context) error

	// Commit fails when no transaction is open.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. After Commit it only reports that
	// no transaction is open.
	Rollback(ctx context.Context) error

	CustomerRepository() CustomerRepository
	OrderRepository() OrderRepository
	MeasurementRepository() MeasurementRepository

	// TrackedAggregates lists the aggregates the repositories wrote. Rollback
	// empties it.
	TrackedAggregates() []any
}

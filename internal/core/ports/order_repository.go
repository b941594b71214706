package ports

import (
	"context"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and records the store-assigned ID
	// and timestamps on it.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier. Soft-deleted orders are only
	// returned when includeDeleted is true.
	// Returns ObjectNotFoundError when no matching row exists.
	Get(ctx context.Context, id kernel.ID, includeDeleted bool) (*order.Order, error)

	// Delete soft-deletes the order.
	Delete(ctx context.Context, aggregate *order.Order) error

	// CountActiveByCustomer counts the customer's live orders that are
	// Pending or Processing.
	//
	// Example:
	//   active, err := repo.CountActiveByCustomer(ctx, customerID)
	//   if err != nil {
	//       return fmt.Errorf("count active orders: %w", err)
	//   }
	CountActiveByCustomer(ctx context.Context, customerID kernel.ID) (int64, error)
}

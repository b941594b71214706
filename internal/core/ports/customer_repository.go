// Package ports defines repository and messaging interfaces for the tailor
// shop domain. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"tailor/internal/core/domain/model/customer"
	"tailor/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer and records the store-assigned ID and
	// timestamps on the aggregate.
	// Returns DuplicateValueError when the phone is already used by a live customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer.
	// Returns DuplicateValueError when the phone is already used by a live customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its identifier. Soft-deleted customers are
	// only returned when includeDeleted is true.
	// Returns ObjectNotFoundError when no matching row exists.
	Get(ctx context.Context, id kernel.ID, includeDeleted bool) (*customer.Customer, error)

	// Delete soft-deletes the customer. Business gates are checked by the
	// caller before this is invoked.
	Delete(ctx context.Context, aggregate *customer.Customer) error
}

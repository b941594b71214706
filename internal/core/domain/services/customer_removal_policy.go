package services

import (
	"fmt"

	"tailor/internal/core/domain/model/customer"
	"tailor/internal/pkg/errs"
)

// CustomerHasActiveOrdersMessage is shown to users when a deletion is refused.
const CustomerHasActiveOrdersMessage = "Customer cannot be deleted because they have pending or processing orders."

// CustomerRemovalPolicy guards customer deletion. A customer may only be
// deleted when none of their live orders is Pending or Processing; Ready
// orders and soft-deleted orders do not block.
//
// Example usage:
//
//	policy := services.NewCustomerRemovalPolicy()
//	active, err := orderRepo.CountActiveByCustomer(ctx, c.ID())
//	if err != nil {
//	    return err
//	}
//	if err := policy.EnsureDeletable(c, active); err != nil {
//	    return err // BusinessRuleViolationError
//	}
type CustomerRemovalPolicy struct{}

// NewCustomerRemovalPolicy creates a new CustomerRemovalPolicy instance.
func NewCustomerRemovalPolicy() CustomerRemovalPolicy {
	return CustomerRemovalPolicy{}
}

// EnsureDeletable checks the customer against the number of their orders
// that are still Pending or Processing.
//
// Returns:
//   - nil if the customer can be deleted
//   - BusinessRuleViolationError if activeOrders > 0
//   - validation errors for unconstructed customers or negative counts
func (CustomerRemovalPolicy) EnsureDeletable(c *customer.Customer, activeOrders int64) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if activeOrders < 0 {
		return errs.NewValueIsInvalidErrorWithCause("active orders", fmt.Errorf("%d is negative", activeOrders))
	}
	if activeOrders > 0 {
		return errs.NewBusinessRuleViolationError(CustomerHasActiveOrdersMessage)
	}
	return nil
}

package order

import (
	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/pkg/errs"
)

// DeadlineMustFollowOrderDateMessage is shown to users when a deadline is
// not after the order date.
const DeadlineMustFollowOrderDateMessage = "Deadline must be after the order date."

// ValidateDeadline enforces that the deadline is strictly after the order
// date. Equal dates are rejected.
//
// Returns:
//   - nil when deadline > orderDate
//   - BusinessRuleViolationError otherwise
func ValidateDeadline(orderDate, deadline kernel.Date) error {
	if !deadline.After(orderDate) {
		return errs.NewBusinessRuleViolationError(DeadlineMustFollowOrderDateMessage)
	}
	return nil
}

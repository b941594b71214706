package commands

import (
	"context"

	"tailor/internal/core/domain/services"
)

// DeleteCustomerCommandHandler soft-deletes customers that have no Pending
// or Processing orders.
//
// Example:
//
//	cmd, _ := NewDeleteCustomerCommand(customerID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrBusinessRuleViolation) {
//	    // customer still has active orders and was left untouched
//	}
type DeleteCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	policy     services.CustomerRemovalPolicy
}

func NewDeleteCustomerCommandHandler(uowFactory CustomerUoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewCustomerRemovalPolicy(),
	}
}

// Handle counts the customer's active orders and deletes only when there are none.
func (h *DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	c, err := customerRepo.Get(ctx, cmd.CustomerID(), false)
	if err != nil {
		return err
	}

	active, err := uow.OrderRepository().CountActiveByCustomer(ctx, c.ID())
	if err != nil {
		return err
	}

	if err = h.policy.EnsureDeletable(c, active); err != nil {
		return err
	}

	if err = customerRepo.Delete(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

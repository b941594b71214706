package commands

import (
	"context"
	"errors"

	"tailor/internal/core/domain/model/customer"
)

// UpdateCustomerCommandHandler applies partial updates to live customers.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the customer, applies every provided field and writes the
// result. Soft-deleted customers are reported as not found.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	c, err := repo.Get(ctx, cmd.CustomerID(), false)
	if err != nil {
		return nil, err
	}

	if err = applyCustomerPatch(c, cmd.Patch()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

func applyCustomerPatch(c *customer.Customer, patch CustomerPatch) error {
	var problems []error
	if name, ok := patched(patch.Name); ok {
		problems = append(problems, c.Rename(name))
	}
	if patch.Phone.IsSpecified() {
		problems = append(problems, c.ChangePhone(patchedPtr(patch.Phone)))
	}
	if patch.Address.IsSpecified() {
		problems = append(problems, c.ChangeAddress(patchedPtr(patch.Address)))
	}
	return errors.Join(problems...)
}

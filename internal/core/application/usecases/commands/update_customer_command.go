package commands

import (
	"errors"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/pkg/errs"
	"tailor/internal/pkg/guard"

	"github.com/oapi-codegen/nullable"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// CustomerPatch lists the customer fields to change. Unset fields are left
// as they are; a null or blank phone or address clears it.
type CustomerPatch struct {
	Name    nullable.Nullable[string]
	Phone   nullable.Nullable[string]
	Address nullable.Nullable[string]
}

// UpdateCustomerCommand is a partial update of one customer.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	patch      CustomerPatch

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(customerID kernel.ID, patch CustomerPatch) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		checkNamePatch(patch.Name),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return cmd, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() kernel.ID { return c.customerID }
func (c UpdateCustomerCommand) Patch() CustomerPatch  { return c.patch }

func (c *UpdateCustomerCommand) setCustomerID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func checkNamePatch(name nullable.Nullable[string]) error {
	if name.IsNull() {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}

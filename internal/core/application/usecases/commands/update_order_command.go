package commands

import (
	"errors"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/pkg/errs"
	"tailor/internal/pkg/guard"

	"github.com/oapi-codegen/nullable"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// OrderPatch lists the order fields to change. None of them may be null.
// Status is the raw text value and is parsed by NewUpdateOrderCommand.
type OrderPatch struct {
	CustomerID nullable.Nullable[kernel.ID]
	OrderDate  nullable.Nullable[kernel.Date]
	Deadline   nullable.Nullable[kernel.Date]
	ItemType   nullable.Nullable[string]
	Status     nullable.Nullable[string]
}

// UpdateOrderCommand is a partial update of one order.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	patch   OrderPatch
	status  *order.Status

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(orderID kernel.ID, patch OrderPatch) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		notNull("customer_id", patch.CustomerID.IsNull()),
		notNull("order_date", patch.OrderDate.IsNull()),
		notNull("deadline", patch.Deadline.IsNull()),
		notNull("item_type", patch.ItemType.IsNull()),
		notNull("status", patch.Status.IsNull()),
		cmd.setStatus(patch.Status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.ID { return c.orderID }
func (c UpdateOrderCommand) Patch() OrderPatch  { return c.patch }

// Status returns the parsed status, nil when the patch leaves it alone.
func (c UpdateOrderCommand) Status() *order.Status { return c.status }

func (c *UpdateOrderCommand) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *UpdateOrderCommand) setStatus(raw nullable.Nullable[string]) error {
	value, ok := patched(raw)
	if !ok {
		return nil
	}

	status, err := order.ParseStatus(value)
	if err != nil {
		return err
	}

	c.status = &status
	return nil
}

func notNull(param string, isNull bool) error {
	if isNull {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

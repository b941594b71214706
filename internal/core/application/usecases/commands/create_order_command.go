package commands

import (
	"errors"
	"strings"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/pkg/errs"
	"tailor/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to take a new clothing order.
//
// Example:
//
//	orderDate, _ := kernel.ParseDate("2024-01-01")
//	deadline, _ := kernel.ParseDate("2024-01-10")
//	cmd, err := NewCreateOrderCommand(customerID, orderDate, deadline, "Shirt", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrBusinessRuleViolation) {
//	    // "Deadline must be after the order date."
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	orderDate  kernel.Date
	deadline   kernel.Date
	itemType   string
	status     order.Status

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks field shapes and parses the raw status. An
// empty status means Pending. The deadline rule itself is enforced by the
// order aggregate.
func NewCreateOrderCommand(
	customerID kernel.ID,
	orderDate, deadline kernel.Date,
	itemType string,
	rawStatus string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		orderDate: orderDate,
		deadline:  deadline,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		orderDate.Validate(),
		deadline.Validate(),
		cmd.setItemType(itemType),
		cmd.setStatus(rawStatus),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.ID  { return c.customerID }
func (c CreateOrderCommand) OrderDate() kernel.Date { return c.orderDate }
func (c CreateOrderCommand) Deadline() kernel.Date  { return c.deadline }
func (c CreateOrderCommand) ItemType() string       { return c.itemType }
func (c CreateOrderCommand) Status() order.Status   { return c.status }

func (c *CreateOrderCommand) setCustomerID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer_id", err)
	}

	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setItemType(itemType string) error {
	if strings.TrimSpace(itemType) == "" {
		return errs.NewValueIsRequiredError("item_type")
	}

	c.itemType = itemType
	return nil
}

func (c *CreateOrderCommand) setStatus(raw string) error {
	if raw == "" {
		c.status = order.Pending
		return nil
	}

	status, err := order.ParseStatus(raw)
	if err != nil {
		return err
	}

	c.status = status
	return nil
}

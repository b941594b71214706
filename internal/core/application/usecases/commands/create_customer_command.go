package commands

import (
	"errors"
	"strings"

	"tailor/internal/pkg/errs"
	"tailor/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
//
// Example:
//
//	phone := "555-0100"
//	cmd, err := NewCreateCustomerCommand("Alice", &phone, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name    string
	phone   *string
	address *string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand checks that a name is present. Phone and address
// are optional; blank values are treated as absent.
func NewCreateCustomerCommand(name string, phone, address *string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Name() string     { return c.name }
func (c CreateCustomerCommand) Phone() *string   { return c.phone }
func (c CreateCustomerCommand) Address() *string { return c.address }

func (c *CreateCustomerCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

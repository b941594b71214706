package customer

import (
	"errors"
	"strings"
	"time"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/pkg/errs"
)

// MaxTextLength bounds name and phone.
const MaxTextLength = 255

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a client of the shop. Orders and measurements reference it by ID.
type Customer struct {
	id      kernel.ID
	name    string
	phone   *string
	address *string

	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time

	isConstructed bool
}

// NewCustomer creates a customer that has not been stored yet. Blank phone
// and address are stored as absent.
func NewCustomer(name string, phone, address *string) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.Rename(name),
		c.ChangePhone(phone),
		c.ChangeAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a customer from persistence.
func RestoreCustomer(
	id kernel.ID,
	name string,
	phone, address *string,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) (*Customer, error) {
	c, err := NewCustomer(name, phone, address)
	if err != nil {
		return nil, err
	}
	if err = c.MarkPersisted(id, createdAt, updatedAt); err != nil {
		return nil, err
	}
	c.deletedAt = deletedAt
	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.ID        { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Phone() *string       { return c.phone }
func (c *Customer) Address() *string     { return c.address }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }
func (c *Customer) DeletedAt() *time.Time {
	return c.deletedAt
}

// IsDeleted reports whether the customer has been soft-deleted.
func (c *Customer) IsDeleted() bool { return c.deletedAt != nil }

// Rename replaces the customer's name.
func (c *Customer) Rename(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(trimmed) > MaxTextLength {
		return errs.NewValueIsOutOfRangeError("name", len(trimmed), 1, MaxTextLength)
	}
	c.name = trimmed
	return nil
}

// ChangePhone replaces the phone number; nil or blank clears it.
func (c *Customer) ChangePhone(phone *string) error {
	normalized := normalize(phone)
	if normalized != nil && len(*normalized) > MaxTextLength {
		return errs.NewValueIsOutOfRangeError("phone", len(*normalized), 1, MaxTextLength)
	}
	c.phone = normalized
	return nil
}

// ChangeAddress replaces the address; nil or blank clears it.
func (c *Customer) ChangeAddress(address *string) error {
	c.address = normalize(address)
	return nil
}

// MarkPersisted records the store-assigned identity and timestamps.
func (c *Customer) MarkPersisted(id kernel.ID, createdAt, updatedAt time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	c.createdAt = createdAt
	c.updatedAt = updatedAt
	return nil
}

// MarkDeleted records the soft-delete timestamp.
func (c *Customer) MarkDeleted(at time.Time) {
	c.deletedAt = &at
}

func normalize(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

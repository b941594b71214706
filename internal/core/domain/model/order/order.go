package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/pkg/errs"
)

// MaxItemTypeLength bounds the garment description stored with an order.
const MaxItemTypeLength = 255

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a clothing order taken for a customer. It is the aggregate
// root for the order lifecycle from intake to pickup.
//
// Order follows these invariants:
//   - Must belong to a valid customer
//   - Deadline is strictly after the order date
//   - Item type is a non-blank garment description
//   - Status is one of Pending, Processing, Ready
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is assigned by the store on insert (zero until then)
	id kernel.ID

	// customerID is the owning customer
	customerID kernel.ID

	// orderDate is the day the order was taken
	orderDate kernel.Date

	// deadline is the promised pickup day
	deadline kernel.Date

	// itemType describes the garment (e.g. "Shirt", "Suit")
	itemType string

	status Status

	createdAt time.Time
	updatedAt time.Time

	// deletedAt is set once the order has been soft-deleted
	deletedAt *time.Time

	events []StatusChanged

	isConstructed bool
}

// NewOrder creates a new Pending order. The deadline rule is checked before
// anything else so that callers get the business message rather than a
// field error when both are wrong.
//
// Example:
//
//	orderDate, _ := kernel.ParseDate("2024-01-01")
//	deadline, _ := kernel.ParseDate("2024-01-10")
//	o, err := order.NewOrder(customerID, orderDate, deadline, "Shirt")
//	if err != nil {
//	    // BusinessRuleViolationError or a field error
//	}
func NewOrder(customerID kernel.ID, orderDate, deadline kernel.Date, itemType string) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setDates(orderDate, deadline),
		o.setItemType(itemType),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence. Stored rows are trusted
// for the deadline rule (it was checked on write) but field shapes are still
// validated.
func RestoreOrder(
	id kernel.ID,
	customerID kernel.ID,
	orderDate, deadline kernel.Date,
	itemType string,
	status Status,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		deletedAt:     deletedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		o.setCustomerID(customerID),
		orderDate.Validate(),
		deadline.Validate(),
		o.setItemType(itemType),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.id = id
	o.orderDate = orderDate
	o.deadline = deadline
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier (zero before the first Add).
func (o *Order) ID() kernel.ID { return o.id }

// CustomerID returns the owning customer.
func (o *Order) CustomerID() kernel.ID { return o.customerID }

// OrderDate returns the intake day.
func (o *Order) OrderDate() kernel.Date { return o.orderDate }

// Deadline returns the promised pickup day.
func (o *Order) Deadline() kernel.Date { return o.deadline }

// ItemType returns the garment description.
func (o *Order) ItemType() string { return o.itemType }

// Status returns the current status.
func (o *Order) Status() Status { return o.status }

// CreatedAt returns the insert timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last write timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// DeletedAt returns the soft-delete timestamp, nil for live orders.
func (o *Order) DeletedAt() *time.Time { return o.deletedAt }

// IsDeleted reports whether the order has been soft-deleted.
func (o *Order) IsDeleted() bool { return o.deletedAt != nil }

// ChangeStatus sets the status. Any valid status is accepted from any status,
// including the current one. A StatusChanged event is recorded for persisted
// orders.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	from := o.status
	o.status = status
	if !o.id.IsZero() {
		o.recordStatusChange(from, status)
	}
	return nil
}

// Reschedule replaces both dates after checking the deadline rule. On failure
// the order keeps its previous dates.
func (o *Order) Reschedule(orderDate, deadline kernel.Date) error {
	return o.setDates(orderDate, deadline)
}

// Retype replaces the garment description.
func (o *Order) Retype(itemType string) error {
	return o.setItemType(itemType)
}

// Reassign moves the order to another customer.
func (o *Order) Reassign(customerID kernel.ID) error {
	return o.setCustomerID(customerID)
}

// MarkPersisted records the store-assigned identity and timestamps. Repositories
// call it after a successful write.
func (o *Order) MarkPersisted(id kernel.ID, createdAt, updatedAt time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return nil
}

// MarkDeleted records the soft-delete timestamp.
func (o *Order) MarkDeleted(at time.Time) {
	o.deletedAt = &at
}

func (o *Order) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer_id", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDates(orderDate, deadline kernel.Date) error {
	if err := errors.Join(orderDate.Validate(), deadline.Validate()); err != nil {
		return err
	}
	if err := ValidateDeadline(orderDate, deadline); err != nil {
		return err
	}
	o.orderDate = orderDate
	o.deadline = deadline
	return nil
}

func (o *Order) setItemType(itemType string) error {
	trimmed := strings.TrimSpace(itemType)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("item_type")
	}
	if len(trimmed) > MaxItemTypeLength {
		return errs.NewValueIsOutOfRangeErrorWithCause("item_type", len(trimmed), 1, MaxItemTypeLength,
			fmt.Errorf("item type is %d characters long", len(trimmed)))
	}
	o.itemType = trimmed
	return nil
}

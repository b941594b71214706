package order

import (
	"time"

	"tailor/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// StatusChanged is raised every time an order's status is set, including
// when the new status equals the old one.
type StatusChanged struct {
	EventID    uuid.UUID
	OrderID    kernel.ID
	CustomerID kernel.ID
	From       Status
	To         Status
	OccurredAt time.Time
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []StatusChanged {
	events := make([]StatusChanged, len(o.events))
	copy(events, o.events)
	return events
}

// ClearDomainEvents drops recorded events once they have been dispatched.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) recordStatusChange(from, to Status) {
	o.events = append(o.events, StatusChanged{
		EventID:    uuid.New(),
		OrderID:    o.id,
		CustomerID: o.customerID,
		From:       from,
		To:         to,
		OccurredAt: time.Now().UTC(),
	})
}

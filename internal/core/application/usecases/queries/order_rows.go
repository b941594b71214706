package queries

import (
	"time"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
)

// OrderItem is one order joined with its customer's name. CustomerName is
// empty only if the customer row has been removed outright.
type OrderItem struct {
	ID           kernel.ID    `json:"id"`
	CustomerID   kernel.ID    `json:"customer_id"`
	CustomerName string       `json:"customer_name"`
	OrderDate    kernel.Date  `json:"order_date"`
	Deadline     kernel.Date  `json:"deadline"`
	ItemType     string       `json:"item_type"`
	Status       order.Status `json:"status"`
	StatusLabel  string       `json:"status_label"`
	StatusColor  string       `json:"status_color"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	DeletedAt    *time.Time   `json:"deleted_at,omitempty"`
}

const orderColumns = `
	o.id, o.customer_id, COALESCE(c.name, '') AS customer_name,
	o.order_date, o.deadline, o.item_type, o.status,
	o.created_at, o.updated_at, o.deleted_at`

type orderRow struct {
	ID           int64
	CustomerID   int64
	CustomerName string
	OrderDate    time.Time
	Deadline     time.Time
	ItemType     string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

func (r orderRow) toItem() (OrderItem, error) {
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return OrderItem{}, err
	}
	return OrderItem{
		ID:           kernel.ID(r.ID),
		CustomerID:   kernel.ID(r.CustomerID),
		CustomerName: r.CustomerName,
		OrderDate:    kernel.DateFromTime(r.OrderDate),
		Deadline:     kernel.DateFromTime(r.Deadline),
		ItemType:     r.ItemType,
		Status:       status,
		StatusLabel:  status.Label(),
		StatusColor:  status.Color(),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		DeletedAt:    r.DeletedAt,
	}, nil
}

func toOrderItems(rows []orderRow) ([]OrderItem, error) {
	items := make([]OrderItem, 0, len(rows))
	for _, row := range rows {
		item, err := row.toItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

package queries

import (
	"errors"
	"time"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/pkg/guard"
)

var ErrListMeasurementsByCustomerQueryIsNotConstructed = errors.New(
	"ListMeasurementsByCustomerQuery must be created via NewListMeasurementsByCustomerQuery constructor",
)

// ListMeasurementsByCustomerQuery lists every measurement of a live customer.
type ListMeasurementsByCustomerQuery struct {
	customerID kernel.ID

	guard guard.ConstructorGuard
}

func NewListMeasurementsByCustomerQuery(customerID kernel.ID) (ListMeasurementsByCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListMeasurementsByCustomerQuery{}, err
	}
	return ListMeasurementsByCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListMeasurementsByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrListMeasurementsByCustomerQueryIsNotConstructed)
}

func (q ListMeasurementsByCustomerQuery) CustomerID() kernel.ID { return q.customerID }

// MeasurementItem is one measurement set. Absent sizes are null.
type MeasurementItem struct {
	ID                kernel.ID          `json:"id"`
	CustomerID        kernel.ID          `json:"customer_id"`
	Shoulder          *float64           `json:"shoulder"`
	Chest             *float64           `json:"chest"`
	Waist             *float64           `json:"waist"`
	Sleeve            *float64           `json:"sleeve"`
	OtherMeasurements map[string]float64 `json:"other_measurements"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

package measurement

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/pkg/errs"
)

// ErrMeasurementIsNotConstructed is returned when a Measurement was not
// created through NewMeasurement or RestoreMeasurement.
var ErrMeasurementIsNotConstructed = errors.New("Measurement must be created via NewMeasurement constructor")

// Values groups the measured sizes. A nil field means "not measured".
type Values struct {
	Shoulder *float64
	Chest    *float64
	Waist    *float64
	Sleeve   *float64
	Other    map[string]float64
}

// Measurement is a set of body sizes belonging to one customer.
type Measurement struct {
	id         kernel.ID
	customerID kernel.ID
	values     Values

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewMeasurement creates an unsaved measurement for customerID.
func NewMeasurement(customerID kernel.ID, values Values) (*Measurement, error) {
	m := &Measurement{isConstructed: true}

	if err := errors.Join(
		m.setCustomerID(customerID),
		m.Replace(values),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMeasurement rebuilds a measurement from persistence.
func RestoreMeasurement(
	id, customerID kernel.ID,
	values Values,
	createdAt, updatedAt time.Time,
) (*Measurement, error) {
	m, err := NewMeasurement(customerID, values)
	if err != nil {
		return nil, err
	}
	if err = m.MarkPersisted(id, createdAt, updatedAt); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate ensures the Measurement instance was properly constructed.
func (m *Measurement) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMeasurementIsNotConstructed
	}
	return nil
}

func (m *Measurement) ID() kernel.ID         { return m.id }
func (m *Measurement) CustomerID() kernel.ID { return m.customerID }
func (m *Measurement) CreatedAt() time.Time  { return m.createdAt }
func (m *Measurement) UpdatedAt() time.Time  { return m.updatedAt }

// Values returns a copy of the measured sizes.
func (m *Measurement) Values() Values {
	out := Values{
		Shoulder: clone(m.values.Shoulder),
		Chest:    clone(m.values.Chest),
		Waist:    clone(m.values.Waist),
		Sleeve:   clone(m.values.Sleeve),
	}
	if m.values.Other != nil {
		out.Other = make(map[string]float64, len(m.values.Other))
		for k, v := range m.values.Other {
			out.Other[k] = v
		}
	}
	return out
}

// Replace validates and stores all values at once. On failure nothing changes.
func (m *Measurement) Replace(values Values) error {
	var problems []error
	for name, v := range map[string]*float64{
		"shoulder": values.Shoulder,
		"chest":    values.Chest,
		"waist":    values.Waist,
		"sleeve":   values.Sleeve,
	} {
		if v != nil {
			problems = append(problems, checkSize(name, *v))
		}
	}

	var other map[string]float64
	if len(values.Other) > 0 {
		other = make(map[string]float64, len(values.Other))
		for name, v := range values.Other {
			key := strings.TrimSpace(name)
			if key == "" {
				problems = append(problems, errs.NewValueIsRequiredError("other_measurements key"))
				continue
			}
			problems = append(problems, checkSize("other_measurements."+key, v))
			other[key] = v
		}
	}

	if err := errors.Join(problems...); err != nil {
		return err
	}

	m.values = Values{
		Shoulder: clone(values.Shoulder),
		Chest:    clone(values.Chest),
		Waist:    clone(values.Waist),
		Sleeve:   clone(values.Sleeve),
		Other:    other,
	}
	return nil
}

// MarkPersisted records the store-assigned identity and timestamps.
func (m *Measurement) MarkPersisted(id kernel.ID, createdAt, updatedAt time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	m.createdAt = createdAt
	m.updatedAt = updatedAt
	return nil
}

func (m *Measurement) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer_id", err)
	}
	m.customerID = customerID
	return nil
}

func checkSize(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not a finite number", v))
	}
	if v < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is negative", v))
	}
	return nil
}

func clone(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

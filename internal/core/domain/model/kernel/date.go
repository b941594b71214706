package kernel

import (
	"fmt"
	"time"

	"tailor/internal/pkg/errs"
)

// DateLayout is the wire and storage layout of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar day in UTC. Order dates and deadlines are compared by
// day, so any time of day is dropped on construction.
//
// The zero Date is invalid; build one with NewDate, DateFromTime or ParseDate.
//
// Example:
//
//	orderDate, _ := kernel.ParseDate("2024-01-01")
//	deadline, _ := kernel.ParseDate("2024-01-10")
//	deadline.After(orderDate) // true
type Date struct {
	t time.Time
}

// NewDate builds a Date from its components. Out of range components are
// normalized the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateFromTime keeps the calendar day of t as seen in t's own location.
func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return DateFromTime(t), nil
}

// Validate rejects the zero Date.
func (d Date) Validate() error {
	if d.t.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	return nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return d.t
}

// After reports whether d is a strictly later day than other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Before reports whether d is a strictly earlier day than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// Equal reports whether both dates name the same day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// String formats the date as "YYYY-MM-DD".
func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return fmt.Errorf("unmarshal date: %w", err)
	}
	*d = parsed
	return nil
}

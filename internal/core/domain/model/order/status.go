package order

import (
	"fmt"

	"tailor/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
//	Pending ──> Processing ──> Ready
//
// The arrow shows the usual workflow only. Any status may be set from any
// other status, so Status carries display metadata but no transition rules.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is taken but work has not started.
	Pending

	// Processing means the garment is being cut or sewn.
	Processing

	// Ready means the garment can be picked up.
	Ready
)

type statusInfo struct {
	value string
	label string
	color string
}

// statusTable is the single source of the raw value, label and color of every
// valid status.
var statusTable = map[Status]statusInfo{
	Pending:    {value: "pending", label: "Pending", color: "gray"},
	Processing: {value: "processing", label: "Processing", color: "yellow"},
	Ready:      {value: "ready", label: "Ready", color: "green"},
}

// AllStatuses returns every valid status in workflow order.
func AllStatuses() []Status {
	return []Status{Pending, Processing, Ready}
}

// ParseStatus converts a raw value ("pending", "processing", "ready") into a
// Status.
//
// Returns:
//   - the matching Status
//   - InvalidStatusError for any other value, including different casing
func ParseStatus(raw string) (Status, error) {
	for _, s := range AllStatuses() {
		if statusTable[s].value == raw {
			return s, nil
		}
	}
	return Unknown, errs.NewInvalidStatusError(raw)
}

// Validate checks if the Status value is one of Pending, Processing, Ready.
func (s Status) Validate() error {
	if _, ok := statusTable[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the raw value used in storage and on the wire, or "unknown".
func (s Status) String() string {
	if info, ok := statusTable[s]; ok {
		return info.value
	}
	return "unknown"
}

// Label returns the display name of the status.
func (s Status) Label() string {
	if info, ok := statusTable[s]; ok {
		return info.label
	}
	return "Unknown"
}

// Color returns the display color tag of the status.
func (s Status) Color() string {
	if info, ok := statusTable[s]; ok {
		return info.color
	}
	return ""
}

// IsActive reports whether work on the order is still open. Customers with
// active orders cannot be deleted.
func (s Status) IsActive() bool {
	return s == Pending || s == Processing
}

// MarshalText implements encoding.TextMarshaler so that Status encodes as its
// raw value, including when used as a map key.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

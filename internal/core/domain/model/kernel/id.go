package kernel

import (
	"fmt"
	"strconv"

	"tailor/internal/pkg/errs"
)

// ID is the identifier of a persisted aggregate. Identifiers are assigned by
// the store on insert, so a freshly constructed aggregate carries the zero ID
// until it has been added to a repository.
type ID int64

// NewID validates and wraps a raw identifier.
//
// Returns:
//   - ID if value is positive
//   - ValueIsInvalidError otherwise
func NewID(value int64) (ID, error) {
	id := ID(value)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseID parses a decimal identifier, as found in URL paths and Kafka keys.
func ParseID(raw string) (ID, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}

// Validate checks that the identifier has been assigned.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", int64(id)))
	}
	return nil
}

// IsZero reports whether the identifier has not been assigned yet.
func (id ID) IsZero() bool {
	return id == 0
}

// Int64 returns the raw identifier.
func (id ID) Int64() int64 {
	return int64(id)
}

// String returns the decimal representation.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

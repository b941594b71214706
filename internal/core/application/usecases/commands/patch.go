package commands

import (
	"github.com/oapi-codegen/nullable"
)

// patched returns the new value of a patch field. ok is false when the field
// is absent or null.
func patched[T any](field nullable.Nullable[T]) (value T, ok bool) {
	value, err := field.Get()
	return value, err == nil
}

// patchedPtr returns the new value of a present field, nil for null.
func patchedPtr[T any](field nullable.Nullable[T]) *T {
	value, ok := patched(field)
	if !ok {
		return nil
	}
	return &value
}

package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that no record satisfies the operation's filter.
// An existing-but-unpublished article is reported the same way as a
// missing one.
var ErrNotFound = errors.New("not found")

// ValidationError carries per-field validation failures back to the
// caller. Integrity failures (references to missing records) are reported
// through the same type.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnauthorized means the caller's role is not accepted for the
// requested operation.
var ErrUnauthorized = errors.New("unauthorized role")

// ValidationError reports every field of a request that failed validation,
// keyed by field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// newValidationError builds a ValidationError from field/message pairs.
func newValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

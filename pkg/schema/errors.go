package schema

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationErrors maps a field path (e.g. "config.transport") to a
// human-readable message. It is data, not a raised error: an empty map
// means the entry is acceptable for parsing.
type ValidationErrors map[string]string

// Join renders the errors as "field: message" pairs joined by ", ",
// with field paths sorted for deterministic output.
func (v ValidationErrors) Join() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	pairs := make([]string, 0, len(fields))
	for _, field := range fields {
		pairs = append(pairs, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return strings.Join(pairs, ", ")
}

// MissingFieldError indicates a required top-level key is absent from
// the registry document.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("registry field %q is required", e.Field)
}

// EntryValidationError aggregates all validation failures for a single
// entry. ID is empty when the entry was validated outside a registry
// document.
type EntryValidationError struct {
	ID     string
	Errors ValidationErrors
}

func (e *EntryValidationError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("validation errors for server '%s': %s", e.ID, e.Errors.Join())
	}
	return fmt.Sprintf("entry validation failed: %s", e.Errors.Join())
}

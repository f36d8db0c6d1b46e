package newsportal

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
)

// ValidationErrors maps a field path to a human readable message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = field + ": " + v[field]
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) add(field, message string) {
	if _, ok := v[field]; !ok {
		v[field] = message
	}
}

func (v ValidationErrors) err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

package routing

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrStationNotFound is returned by ScheduleSource implementations for
// unknown station codes.
var ErrStationNotFound = errors.New("station not found")

// InputError reports invalid search input. It carries field-level messages in
// the same shape the API layer renders, and is the only error Search returns
// for bad requests; exhausted searches are outcomes, not errors.
type InputError struct {
	FieldErrors map[string][]string
}

func newInputError() *InputError {
	return &InputError{FieldErrors: make(map[string][]string)}
}

func (e *InputError) add(field, message string) {
	e.FieldErrors[field] = append(e.FieldErrors[field], message)
}

func (e *InputError) hasErrors() bool {
	return len(e.FieldErrors) > 0
}

func (e *InputError) Error() string {
	fields := make([]string, 0, len(e.FieldErrors))
	for field := range e.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var parts []string
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.FieldErrors[field], "; ")))
	}
	return "invalid search input: " + strings.Join(parts, ", ")
}

// diagnostics collects schedule anomalies skipped during one search. A single
// bad train must not abort an otherwise-successful search; the entries are
// attached to the result for the caller to inspect.
type diagnostics struct {
	entries []string
}

func (d *diagnostics) addf(format string, args ...any) {
	d.entries = append(d.entries, fmt.Sprintf(format, args...))
}

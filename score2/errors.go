package score2

import (
	"fmt"
	"strings"
)

// The error types below make up the whole failure surface of the
// service. Every one of them is recoverable by correcting the input
// and re-submitting; none is retried and none crashes the process.

// SchemaError indicates a malformed input file: one or more required
// columns are absent (or renamed).
type SchemaError struct {
	Missing []string
}

// NewSchemaError returns a SchemaError for the given missing columns.
func NewSchemaError(missing ...string) *SchemaError {
	return &SchemaError{Missing: missing}
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required column(s): %s", strings.Join(e.Missing, ", "))
}

// DuplicateRowError indicates that two rows in a lookup file share the
// same band-key tuple, which would make lookups ambiguous.
type DuplicateRowError struct {
	Key        BandKey
	FirstLine  int
	SecondLine int
}

func (e *DuplicateRowError) Error() string {
	return fmt.Sprintf("duplicate row for %s (lines %d and %d)", e.Key, e.FirstLine, e.SecondLine)
}

// NoMatchError indicates that the patient's band combination is absent
// from the loaded table. The caller should display "no data for this
// combination".
type NoMatchError struct {
	Key BandKey
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no data for this combination: %s", e.Key)
}

// RangeError indicates a manually entered percentage outside [0,100].
type RangeError struct {
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("percentage %g is outside the valid range [0,100]", e.Value)
}

// NotImplementedError indicates that the closed-form mode was invoked.
// It stays in place until the published ESC 2021 coefficients are
// bundled; the values must not be guessed.
type NotImplementedError struct {
	msg string
}

// NewNotImplementedError returns a new NotImplementedError with the
// given message.
func NewNotImplementedError(msg string) *NotImplementedError {
	return &NotImplementedError{msg: msg}
}

func (e *NotImplementedError) Error() string { return e.msg }

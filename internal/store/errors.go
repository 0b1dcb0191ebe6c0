package store

import (
	"fmt"
	"strings"
)

// The loader distinguishes three failure kinds so callers can branch with
// errors.As instead of parsing message text: inputs that are absent, inputs
// that are present but unusable, and failures inside the database itself.

// MissingInputError reports every expected CSV file that is absent.
type MissingInputError struct {
	Paths []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing CSV files: %s", strings.Join(e.Paths, ", "))
}

// MalformedInputError reports a CSV file that exists but cannot be loaded,
// such as a missing header row or a header that does not match the declared
// table columns.
type MalformedInputError struct {
	Path   string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed CSV %s: %s", e.Path, e.Reason)
}

// StoreError wraps a database-level failure with the operation that caused it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store operation %q failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

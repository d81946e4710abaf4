package dataset

import (
	"errors"
	"fmt"
)

// Common dataset errors.
var (
	// ErrNoInput is returned when an input pattern matches no files.
	ErrNoInput = errors.New("no input file matches pattern")

	// ErrAmbiguousInput is returned when an input pattern matches more
	// than one file.
	ErrAmbiguousInput = errors.New("input pattern matches multiple files")

	// ErrMissingColumn is returned when a required column is absent from
	// the CSV header.
	ErrMissingColumn = errors.New("missing required column")
)

// FormatError reports a cell that could not be coerced to its declared type.
type FormatError struct {
	// Line is the 1-based CSV line number (header is line 1).
	Line int
	// Column is the CSV column name.
	Column string
	// Value is the raw cell content.
	Value string
	// Err is the underlying parse error.
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: column %s: malformed value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

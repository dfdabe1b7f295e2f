package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ReadError reports that a chosen input file exists but could not be read
// or decoded in its expected format.
type ReadError struct {
	Path   string // file that was being read
	Format string // "parquet", "csv"
	Reason string // human-readable explanation (optional)
	Err    error  // underlying cause (may be nil)
}

func (e *ReadError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("read error in %s file %s", e.Format, e.Path))

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	return strings.Join(parts, " - ")
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError wraps an I/O or decoding failure for the given file.
func NewReadError(path, format string, err error) *ReadError {
	return &ReadError{
		Path:   path,
		Format: format,
		Err:    err,
	}
}

// NewMalformedInput reports a structurally invalid file without an underlying cause.
func NewMalformedInput(path, format, reason string) *ReadError {
	return &ReadError{
		Path:   path,
		Format: format,
		Reason: reason,
	}
}

// AggregationError reports that a grouped aggregation cannot run against
// the schema of its input table.
type AggregationError struct {
	Column    string   // offending column
	Reason    string   // "missing column", "non-numeric column", ...
	Available []string // columns present in the input (optional)
}

func (e *AggregationError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("aggregation error on column %q", e.Column))

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if len(e.Available) > 0 {
		parts = append(parts, fmt.Sprintf("available columns: %s", strings.Join(e.Available, ", ")))
	}

	return strings.Join(parts, " - ")
}

func NewMissingColumn(column string, available []string) *AggregationError {
	return &AggregationError{
		Column:    column,
		Reason:    "column not found",
		Available: available,
	}
}

func NewNonNumericColumn(column, columnType string) *AggregationError {
	return &AggregationError{
		Column: column,
		Reason: fmt.Sprintf("expected numeric column, got %s", columnType),
	}
}

func NewInvalidAggregation(column, reason string) *AggregationError {
	return &AggregationError{
		Column: column,
		Reason: reason,
	}
}

// SerializationError reports that the benchmark result could not be encoded
// or written out.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization error: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// IsReadError reports whether err has a ReadError in its chain.
func IsReadError(err error) bool {
	var target *ReadError
	return stderrors.As(err, &target)
}

// IsAggregationError reports whether err has an AggregationError in its chain.
func IsAggregationError(err error) bool {
	var target *AggregationError
	return stderrors.As(err, &target)
}

// IsSerializationError reports whether err has a SerializationError in its chain.
func IsSerializationError(err error) bool {
	var target *SerializationError
	return stderrors.As(err, &target)
}

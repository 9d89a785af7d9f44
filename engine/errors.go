package engine

import "errors"

// Errors returned by filtering and projection.
var (
	// ErrInvalidRange is returned when a range has Low > High or a NaN bound.
	// Bounds are never swapped.
	ErrInvalidRange = errors.New("invalid range")

	// ErrColumnNotFound is returned when a column is not present in the view.
	ErrColumnNotFound = errors.New("column not found")

	// ErrColumnNotNumeric is returned when a numeric operation names a
	// string or date column.
	ErrColumnNotNumeric = errors.New("column is not numeric")
)

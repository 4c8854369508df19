// SPDX-License-Identifier: MIT
// Package frame: sentinel error set.
// Operations return these sentinels wrapped with an operation tag and the
// offending column; callers match with errors.Is.

package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a frame would have no columns, or a CSV has no bytes.
	ErrEmpty = errors.New("frame: empty")

	// ErrMalformedCSV is returned when a CSV has a header but no usable records.
	ErrMalformedCSV = errors.New("frame: malformed csv")

	// ErrMissingValue is returned when a CSV cell is absent or does not parse as its column's type.
	ErrMissingValue = errors.New("frame: missing or unparsable value")

	// ErrColumnNotFound is returned when a named column does not exist.
	ErrColumnNotFound = errors.New("frame: column not found")

	// ErrColumnDataType is returned when a column's dtype is not accepted by an operation.
	ErrColumnDataType = errors.New("frame: unexpected column data type")

	// ErrLengthMismatch is returned when a column length differs from the frame height.
	ErrLengthMismatch = errors.New("frame: column length mismatch")

	// ErrDuplicateColumn is returned when two columns would share a name.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")

	// ErrJoinUnmatched is returned when a join key has no (or more than one) partner row.
	ErrJoinUnmatched = errors.New("frame: join key not matched exactly once")
)

// frameErrorf tags err with the operation and the column involved.
func frameErrorf(op, column string, err error) error {
	return fmt.Errorf("%s: column %q: %w", op, column, err)
}

// dtypeError reports an unexpected dtype with what was expected and what was found.
func dtypeError(op, column, expected string, found DType) error {
	return fmt.Errorf("%s: column %q: expected %s, found %s: %w", op, column, expected, found, ErrColumnDataType)
}

package resultset

import (
	"fmt"

	"github.com/dropbox/godropbox/errors"
)

var (
	// ErrClosed is returned by any method called on a closed result set.
	ErrClosed = errors.New("method was called on a closed ResultSet")

	// ErrNotSupported is returned for repositioning and the other parts of
	// the surface a forward-only read-only cursor cannot provide.
	ErrNotSupported = errors.New("the method is not supported")

	// ErrForwardOnly is returned when beforeFirst/afterLast positioning is
	// attempted on a result set declared forward-only; unlike
	// ErrNotSupported it signals structural misuse, not a missing feature.
	ErrForwardOnly = errors.New("can not be called on a ResultSet declared TYPE_FORWARD_ONLY")
)

// OutOfRangeError reports a column index outside [1, Count].
type OutOfRangeError struct {
	Index int
	Count int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d must be a positive number less or equal the count of returned columns %d", e.Index, e.Count)
}

// UnknownColumnError reports a column name absent from the current row.
type UnknownColumnError struct {
	Name string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("name provided was not in the list of valid column labels: %q", e.Name)
}

// NotTranslatableError reports that no coercion rule exists from the
// value's native type to the requested target type.
type NotTranslatableError struct {
	Source string
	Target string
}

func (e *NotTranslatableError) Error() string {
	return fmt.Sprintf("column was stored in %s format which is not translatable to %s", e.Source, e.Target)
}

// NotBooleanError reports a string value that is neither "true" nor
// "false" during boolean coercion.
type NotBooleanError struct {
	Value string
}

func (e *NotBooleanError) Error() string {
	return fmt.Sprintf("string value %q is not a boolean", e.Value)
}

// InvalidArgumentError reports a bad fetch size or fetch direction.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return e.Reason
}

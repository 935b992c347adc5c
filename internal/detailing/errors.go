package detailing

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidGeometry is returned for a non-positive or logically
	// inconsistent dimension, such as a slab length shorter than its breadth.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrUnsupportedConfiguration is returned for a stirrup leg count, slab
	// type or configuration variant the engine does not implement.
	ErrUnsupportedConfiguration = errors.New("unsupported configuration")
)

// GeometryError adds the offending field and value to one of the sentinel
// errors above. Match it with errors.Is against the sentinel.
type GeometryError struct {
	Field string
	Value float64
	Err   error
}

func (e *GeometryError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s=%.2f", e.Err, e.Field, e.Value)
}

func (e *GeometryError) Unwrap() error {
	return e.Err
}

// Invalid returns an ErrInvalidGeometry error for field
func Invalid(field string, value float64) error {
	return &GeometryError{Field: field, Value: value, Err: ErrInvalidGeometry}
}

// Unsupported returns an ErrUnsupportedConfiguration error with a message
func Unsupported(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedConfiguration, fmt.Sprintf(format, args...))
}

// Finite reports whether v is neither NaN nor an infinity
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// RequirePositive returns an ErrInvalidGeometry error unless value is a
// finite number > 0
func RequirePositive(field string, value float64) error {
	if !Finite(value) || value <= 0 {
		return Invalid(field, value)
	}
	return nil
}

// RequireNonNegative returns an ErrInvalidGeometry error unless value is a
// finite number >= 0
func RequireNonNegative(field string, value float64) error {
	if !Finite(value) || value < 0 {
		return Invalid(field, value)
	}
	return nil
}

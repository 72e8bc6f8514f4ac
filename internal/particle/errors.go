package particle

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation indicates the particle storage could not be obtained.
	ErrAllocation = errors.New("particle: could not allocate memory for particles")

	// ErrInvalidSize indicates a non-positive system size.
	ErrInvalidSize = errors.New("particle: size must be at least 1")

	// ErrInvalidRange indicates an inverted or non-finite sampling range.
	ErrInvalidRange = errors.New("particle: invalid range")
)

// RangeError names the offending range of a failed generation.
type RangeError struct {
	Name  string
	Range Range
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s [%g, %g]", ErrInvalidRange, e.Name, e.Range.Min, e.Range.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}

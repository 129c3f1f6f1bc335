package fixedarray

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("FixedArray: index out of range")

// RangeError reports a write to an index outside [0, Length).
// It unwraps to ErrOutOfRange.
type RangeError struct {
	Index  int
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("FixedArray: index %d out of range [0, %d)", e.Index, e.Length)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

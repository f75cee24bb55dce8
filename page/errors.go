package page

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned (wrapped in *RangeError) when a byte index lies
// outside the loaded file.
var ErrOutOfRange = errors.New("byte index out of range")

type RangeError struct {
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("byte index %d out of range [0,%d)", e.Index, e.Size)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

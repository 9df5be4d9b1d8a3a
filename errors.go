package vec

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IndexError reports a checked access outside the live range of a vector.
// It wraps [ErrIndexOutOfRange] for use with errors.Is.
type IndexError struct {
	// Index is the offending index.
	Index int
	// Size is the vector's size at the time of the access.
	Size int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

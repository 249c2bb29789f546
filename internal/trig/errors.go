package trig

import (
	"errors"
	"fmt"
)

// ErrTableSize indicates a table resolution that is not a power of two in
// [MinTableSize, MaxTableSize].
var ErrTableSize = errors.New("trig: table size must be a power of two in [8, 4096]")

// TableSizeError wraps ErrTableSize with the rejected size.
type TableSizeError struct {
	Size int
}

func (e *TableSizeError) Error() string {
	return fmt.Sprintf("%v (got %d)", ErrTableSize, e.Size)
}

func (e *TableSizeError) Unwrap() error {
	return ErrTableSize
}

// ValidTableSize reports whether n can be used as a table resolution.
func ValidTableSize(n int) bool {
	return n >= MinTableSize && n <= MaxTableSize && n&(n-1) == 0
}

package rvfill

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCache is returned when a fill is requested against an empty
	// cache buffer.
	ErrEmptyCache = errors.New("cache buffer must not be empty")

	// ErrInvalidThreadCount is returned when a configured thread count is
	// negative or zero where at least one thread is required.
	ErrInvalidThreadCount = errors.New("thread count must be at least 1")
)

// RegionBoundsError indicates a worker range that does not fit inside the
// destination region. The reference design treats this as undefined
// behavior; here it fails fast instead of corrupting memory.
type RegionBoundsError struct {
	Offset    int
	Size      int
	RegionLen int
}

func (e *RegionBoundsError) Error() string {
	return fmt.Sprintf("worker range [%d, %d) outside destination region of %d bytes",
		e.Offset, e.Offset+e.Size, e.RegionLen)
}

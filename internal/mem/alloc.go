package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of returned buffers: one cache line on
// the targets we tune for.
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with cache-line
// alignment. The returned slice is guaranteed to start at a memory address
// divisible by Alignment.
//
// Note: This function allocates slightly more memory than requested to ensure
// alignment. The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment so an aligned offset always exists within
	// the buffer.
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocAlignedUint64 allocates a uint64 slice of the given length with
// cache-line alignment.
func AllocAlignedUint64(size int) []uint64 {
	if size <= 0 {
		return nil
	}

	byteSlice := AllocAligned(size * 8)

	// Safe because AllocAligned guarantees 64-byte alignment, which covers
	// the 8-byte alignment uint64 requires.
	ptr := unsafe.Pointer(&byteSlice[0])      //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*uint64)(ptr), size) //nolint:gosec // unsafe is required for memory alignment
}

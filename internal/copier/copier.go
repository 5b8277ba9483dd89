package copier

import (
	"encoding/binary"
	"unsafe"
)

// prefetchDistance is how many cache lines ahead of the copy position the
// source and destination are touched.
const prefetchDistance = 2

// alignedThreshold is the minimum copy size, in cache lines, for the
// aligned path. Below it the per-line bookkeeping costs more than it saves.
const alignedThreshold = 4

var prefetchSink byte

// Prefetch touches the first byte of b so its cache line is pulled in ahead
// of use. Go exposes no portable prefetch hint; an ordinary read has the
// same warming effect on lines that are about to be copied.
func Prefetch(b []byte) {
	if len(b) > 0 {
		prefetchSink = b[0]
	}
}

// PrefetchSpan touches one byte every stride bytes of b, pulling the whole
// span into cache. stride is normally the cache-line size.
func PrefetchSpan(b []byte, stride int) {
	if stride <= 0 {
		stride = 64
	}
	for i := 0; i < len(b); i += stride {
		prefetchSink = b[i]
	}
}

// CopyAligned copies src into dst, choosing a line-by-line strategy with
// prefetch when both base addresses are aligned to cacheLineSize and the
// copy spans at least alignedThreshold lines. Tail bytes past the last full
// line are always copied byte-wise. The output is byte-identical to a
// naive byte-wise copy for every input.
//
// SAFETY: Assumes len(dst) == len(src) and that cacheLineSize is a power of
// two and a multiple of 8. Callers MUST ensure both.
func CopyAligned(dst, src []byte, cacheLineSize int) {
	size := len(src)
	if size == 0 {
		return
	}

	if !isAligned(dst, cacheLineSize) || !isAligned(src, cacheLineSize) || size < alignedThreshold*cacheLineSize {
		copyBytes(dst, src)
		return
	}

	alignedSize := size &^ (cacheLineSize - 1)
	for i := 0; i < alignedSize; i += cacheLineSize {
		if ahead := i + prefetchDistance*cacheLineSize; ahead < alignedSize {
			Prefetch(src[ahead:])
			Prefetch(dst[ahead:])
		}

		d := dst[i : i+cacheLineSize]
		s := src[i : i+cacheLineSize]
		for j := 0; j < cacheLineSize; j += 8 {
			binary.LittleEndian.PutUint64(d[j:], binary.LittleEndian.Uint64(s[j:]))
		}
	}

	copyBytes(dst[alignedSize:size], src[alignedSize:size])
}

func copyBytes(dst, src []byte) {
	for i := range src {
		dst[i] = src[i]
	}
}

func isAligned(b []byte, align int) bool {
	return uintptr(unsafe.Pointer(&b[0]))&uintptr(align-1) == 0 //nolint:gosec // unsafe is required for the alignment probe
}

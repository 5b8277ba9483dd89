package vector

import "encoding/binary"

// Block kernels process full 64-byte blocks as eight little-endian words
// and hand every remainder to the scalar kernels, so block-multiple and
// non-block-multiple lengths land on the same byte values either way.

func copyBlock(dst, src []byte) {
	n := len(src)
	i := 0
	for ; n-i >= blockSize; i += blockSize {
		d := dst[i : i+blockSize]
		s := src[i : i+blockSize]
		for j := 0; j < blockSize; j += 8 {
			binary.LittleEndian.PutUint64(d[j:], binary.LittleEndian.Uint64(s[j:]))
		}
	}
	copyScalar(dst[i:n], src[i:n])
}

func fillBlock(dst []byte, value byte) {
	pattern := 0x0101010101010101 * uint64(value)
	n := len(dst)
	i := 0
	for ; n-i >= blockSize; i += blockSize {
		d := dst[i : i+blockSize]
		for j := 0; j < blockSize; j += 8 {
			binary.LittleEndian.PutUint64(d[j:], pattern)
		}
	}
	fillScalar(dst[i:n], value)
}

func xorBlock(dst, a, b []byte) {
	n := len(dst)
	i := 0
	for ; n-i >= blockSize; i += blockSize {
		d := dst[i : i+blockSize]
		x := a[i : i+blockSize]
		y := b[i : i+blockSize]
		for j := 0; j < blockSize; j += 8 {
			binary.LittleEndian.PutUint64(d[j:], binary.LittleEndian.Uint64(x[j:])^binary.LittleEndian.Uint64(y[j:]))
		}
	}
	xorScalar(dst[i:n], a[i:n], b[i:n])
}

func compareBlock(a, b []byte) int {
	n := len(a)
	i := 0
	for ; n-i >= blockSize; i += blockSize {
		for j := 0; j < blockSize; j += 8 {
			if binary.LittleEndian.Uint64(a[i+j:]) != binary.LittleEndian.Uint64(b[i+j:]) {
				// The block scan only reports that this block differs, not
				// where: the exact result comes from the scalar compare
				// within the block.
				return compareScalar(a[i:i+blockSize], b[i:i+blockSize])
			}
		}
	}
	return compareScalar(a[i:n], b[i:n])
}

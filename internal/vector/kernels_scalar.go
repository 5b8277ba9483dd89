package vector

// Scalar reference kernels. These define the observable behavior the block
// kernels must reproduce bit-for-bit.

func copyScalar(dst, src []byte) {
	for i := range src {
		dst[i] = src[i]
	}
}

func fillScalar(dst []byte, value byte) {
	for i := range dst {
		dst[i] = value
	}
}

func xorScalar(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

func compareScalar(a, b []byte) int {
	for i := range a {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return 0
}

package vector

import "github.com/hupe1980/rvfill/internal/isa"

// blockSize is the granularity of the accelerated path: one vector group,
// which is also one cache line on the targets we tune for. Inputs shorter
// than a block go straight to the scalar loop, where the setup cost of the
// block path would not amortize.
const blockSize = 64

// Kernel function pointers - set once at init, zero runtime overhead.
// Scalar implementations are the default; init upgrades to the block
// kernels when the vector extension is available.
var (
	kernelCopy    = copyScalar
	kernelFill    = fillScalar
	kernelXOR     = xorScalar
	kernelCompare = compareScalar
)

func init() {
	if isa.HasVectorExt() {
		ForceBlock()
	}
}

// ForceBlock routes all operations through the block kernels.
// Intended for tests and benchmarks that pin a strategy.
func ForceBlock() {
	kernelCopy = copyBlock
	kernelFill = fillBlock
	kernelXOR = xorBlock
	kernelCompare = compareBlock
}

// ForceScalar routes all operations through the scalar byte loops.
// Intended for tests and benchmarks that pin a strategy.
func ForceScalar() {
	kernelCopy = copyScalar
	kernelFill = fillScalar
	kernelXOR = xorScalar
	kernelCompare = compareScalar
}

// Copy copies src into dst.
//
// SAFETY: Assumes len(dst) == len(src). Caller MUST ensure lengths match.
func Copy(dst, src []byte) {
	kernelCopy(dst, src)
}

// Fill sets every byte of dst to value.
func Fill(dst []byte, value byte) {
	kernelFill(dst, value)
}

// XOR writes a[i] ^ b[i] into dst[i] for every i.
//
// SAFETY: Assumes len(dst) == len(a) == len(b). Caller MUST ensure lengths
// match.
func XOR(dst, a, b []byte) {
	kernelXOR(dst, a, b)
}

// Compare returns 0 iff a and b are byte-equal. A non-zero result carries
// the sign of the first differing byte pair, but only the zero/non-zero
// distinction is part of the contract.
//
// SAFETY: Assumes len(a) == len(b). Caller MUST ensure lengths match.
func Compare(a, b []byte) int {
	return kernelCompare(a, b)
}

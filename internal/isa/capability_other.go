//go:build !riscv64

package isa

func init() {
	// Off the target architecture every extension defaults to absent and
	// all call sites take the portable path.
	initCapabilities()
}

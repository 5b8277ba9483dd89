//go:build riscv64

package isa

import "golang.org/x/sys/cpu"

func init() {
	// The A extension is part of the rv64g baseline the Go port targets,
	// so atomics are a build-time guarantee rather than a runtime probe.
	hasAtomicExt = true
	hasVectorExt = cpu.RISCV64.HasV
	hasBitmanipExt = cpu.RISCV64.HasZba && cpu.RISCV64.HasZbb
	initCapabilities()
}

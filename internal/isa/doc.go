// Package isa detects the instruction-set extensions available to the
// process and selects the kernel strategy used by the primitive layers.
//
// # Detection
//
//   - riscv64: the A (atomic) extension is a build-time guarantee of the
//     rv64g baseline; V (vector) and Zba/Zbb (bit-manipulation) are probed
//     at startup via golang.org/x/sys/cpu.
//   - other targets: conservative default, all extensions absent.
//
// Detection runs exactly once at package init. The snapshot is immutable
// for the lifetime of the process: a flag observed true never becomes
// false, because hardware does not change at runtime.
//
// Set RVFILL_ISA=scalar (or rvv) to override the auto-selected strategy.
// An override naming an unavailable ISA falls back to auto-detection.
package isa

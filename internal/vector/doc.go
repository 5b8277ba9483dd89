// Package vector provides the bulk byte-buffer operations (copy, fill,
// xor, compare) behind the dataset fill path.
//
// # Dual paths
//
// Every operation has two interchangeable implementations: a block path
// that processes 64-byte blocks word-wise (the granularity of one RVV
// vector group and of one cache line) and a scalar byte loop. The path is
// selected once at init from the capability snapshot; it is never chosen
// per call.
//
// Dual-path equivalence is the central correctness property of this
// package: for every input length, including lengths that are not block
// multiples, both paths produce bit-identical results. Remainders are
// handled scalar on both paths. The only observable difference between the
// paths is throughput.
//
// Build or test harnesses can pin a path with ForceScalar/ForceBlock, or
// via RVFILL_ISA before process start.
package vector

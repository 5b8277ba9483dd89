package isa

import (
	"os"
	"strings"
)

// ISA identifies the kernel strategy the bulk-operation layer runs on.
type ISA uint8

const (
	// Scalar is the portable byte-loop implementation (no vector unit).
	Scalar ISA = iota
	// RVV is the RISC-V vector extension (64-byte block kernels).
	RVV
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Scalar:
		return "scalar"
	case RVV:
		return "rvv"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return Scalar, true
	case "rvv":
		return RVV, true
	default:
		return Scalar, false
	}
}

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// activeISA is the selected bulk-kernel strategy.
	activeISA ISA

	// hasOverride is true if RVFILL_ISA was set.
	hasOverride bool

	// Extension flags (set by platform-specific init).
	hasAtomicExt   bool // A: atomic read-modify-write instructions
	hasVectorExt   bool // V: vector unit (RVV 1.0)
	hasBitmanipExt bool // Zba+Zbb: address generation and basic bit-manipulation
)

// initCapabilities is called from platform-specific init functions
// after extension flags are set.
func initCapabilities() {
	// Check for environment override
	if override := os.Getenv("RVFILL_ISA"); override != "" {
		if v, ok := ParseISA(override); ok {
			hasOverride = true
			// Validate the override is available
			if isISAAvailable(v) {
				activeISA = v
				return
			}
			// Invalid override - fall through to auto-detection
		}
	}

	activeISA = selectBestISA()
}

// isISAAvailable checks if an ISA is usable on this CPU.
func isISAAvailable(i ISA) bool {
	switch i {
	case Scalar:
		return true
	case RVV:
		return hasVectorExt
	default:
		return false
	}
}

// selectBestISA chooses the optimal strategy for the current platform.
func selectBestISA() ISA {
	if hasVectorExt {
		return RVV
	}
	return Scalar
}

// ActiveISA returns the currently active kernel strategy.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if RVFILL_ISA was set.
func IsOverridden() bool {
	return hasOverride
}

// HasAtomicExt returns true if the atomic extension is usable.
func HasAtomicExt() bool {
	return hasAtomicExt
}

// HasVectorExt returns true if the vector extension is usable.
func HasVectorExt() bool {
	return hasVectorExt
}

// HasBitmanipExt returns true if Zba and Zbb are both usable.
func HasBitmanipExt() bool {
	return hasBitmanipExt
}

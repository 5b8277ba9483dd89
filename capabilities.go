package rvfill

import (
	"fmt"

	"github.com/hupe1980/rvfill/internal/isa"
)

// CapabilitySet is the process-wide snapshot of usable hardware
// extensions. It is computed exactly once, at startup, and never changes
// for the lifetime of the process: absence of an extension is a path
// selector, never an error.
type CapabilitySet struct {
	// AtomicExt reports the A extension (atomic read-modify-write).
	AtomicExt bool
	// VectorExt reports the V extension (RVV vector unit).
	VectorExt bool
	// BitmanipExt reports Zba and Zbb together.
	BitmanipExt bool
}

// DetectCapabilities returns the capability snapshot. Repeated calls return
// the same value.
func DetectCapabilities() CapabilitySet {
	return CapabilitySet{
		AtomicExt:   isa.HasAtomicExt(),
		VectorExt:   isa.HasVectorExt(),
		BitmanipExt: isa.HasBitmanipExt(),
	}
}

// String returns a compact summary, e.g. "atomic=true vector=false bitmanip=false".
func (c CapabilitySet) String() string {
	return fmt.Sprintf("atomic=%t vector=%t bitmanip=%t", c.AtomicExt, c.VectorExt, c.BitmanipExt)
}

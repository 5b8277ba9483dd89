package rvfill

import (
	"math/bits"
	"runtime"
)

// Conservative defaults for typical RISC-V boards when the platform does
// not report its cache topology.
const (
	DefaultNumCores      = 8
	DefaultCacheLineSize = 64
	DefaultL1CacheSize   = 32 << 10
	DefaultL2CacheSize   = 512 << 10
)

// Topology describes the cache hierarchy the chunk-size heuristics work
// against. The zero value means "use defaults"; vendor-reported figures can
// be supplied through WithTopology.
type Topology struct {
	NumCores      int
	CacheLineSize int
	L1CacheSize   int
	L2CacheSize   int
}

// DetectTopology returns the topology for the current machine: the
// scheduler-visible core count plus the conservative cache defaults, since
// cache geometry is not portably exposed at runtime.
func DetectTopology() Topology {
	return Topology{NumCores: runtime.NumCPU()}.withDefaults()
}

// withDefaults fills every unset field and normalizes the line size. The
// copy path and the partition mask need a power-of-two line of at least a
// machine word, so vendor-reported figures like 48 are rounded up.
func (t Topology) withDefaults() Topology {
	if t.NumCores <= 0 {
		t.NumCores = DefaultNumCores
	}
	if t.CacheLineSize <= 0 {
		t.CacheLineSize = DefaultCacheLineSize
	}
	if t.CacheLineSize&(t.CacheLineSize-1) != 0 {
		t.CacheLineSize = 1 << bits.Len(uint(t.CacheLineSize))
	}
	if t.CacheLineSize < 8 {
		t.CacheLineSize = 8
	}
	if t.L1CacheSize <= 0 {
		t.L1CacheSize = DefaultL1CacheSize
	}
	if t.L2CacheSize <= 0 {
		t.L2CacheSize = DefaultL2CacheSize
	}
	return t
}

package rvfill

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTopology(t *testing.T) {
	topo := DetectTopology()

	assert.Equal(t, runtime.NumCPU(), topo.NumCores)
	assert.Equal(t, DefaultCacheLineSize, topo.CacheLineSize)
	assert.Equal(t, DefaultL1CacheSize, topo.L1CacheSize)
	assert.Equal(t, DefaultL2CacheSize, topo.L2CacheSize)
}

func TestTopologyWithDefaults(t *testing.T) {
	tests := []struct {
		name     string
		input    Topology
		expected Topology
	}{
		{
			"Zero value",
			Topology{},
			Topology{DefaultNumCores, DefaultCacheLineSize, DefaultL1CacheSize, DefaultL2CacheSize},
		},
		{
			"Vendor-reported values kept",
			Topology{NumCores: 4, CacheLineSize: 128, L1CacheSize: 64 << 10, L2CacheSize: 1 << 20},
			Topology{4, 128, 64 << 10, 1 << 20},
		},
		{
			"Partial override",
			Topology{L2CacheSize: 2 << 20},
			Topology{DefaultNumCores, DefaultCacheLineSize, DefaultL1CacheSize, 2 << 20},
		},
		{
			"Non-power-of-two line rounded up",
			Topology{CacheLineSize: 50},
			Topology{DefaultNumCores, 64, DefaultL1CacheSize, DefaultL2CacheSize},
		},
		{
			"Line rounds past the default",
			Topology{CacheLineSize: 100},
			Topology{DefaultNumCores, 128, DefaultL1CacheSize, DefaultL2CacheSize},
		},
		{
			"Sub-word line raised to a word",
			Topology{CacheLineSize: 3},
			Topology{DefaultNumCores, 8, DefaultL1CacheSize, DefaultL2CacheSize},
		},
		{
			"Power-of-two line kept",
			Topology{CacheLineSize: 32},
			Topology{DefaultNumCores, 32, DefaultL1CacheSize, DefaultL2CacheSize},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.input.withDefaults())
		})
	}
}

func TestDetectCapabilitiesStable(t *testing.T) {
	first := DetectCapabilities()
	for n := 0; n < 10; n++ {
		assert.Equal(t, first, DetectCapabilities())
	}
}

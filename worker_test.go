package rvfill

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rvfill/internal/mem"
)

func quietFiller(optFns ...Option) *Filler {
	return New(append([]Option{WithLogger(NoopLogger())}, optFns...)...)
}

func randomCache(seed int64, size int) []byte {
	cache := mem.AllocAligned(size)
	rand.New(rand.NewSource(seed)).Read(cache)
	return cache
}

// The cache buffer is logically replicated across the destination region:
// dataset[i] == cache[i mod cacheSize] must hold even when the wrap point
// falls inside a copy chunk.
func TestRunWorkerCyclicSourceWrap(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		cacheSize int
	}{
		{"Cache divides size", 64 << 10, 1 << 10},
		{"Wrap inside chunk", 100_000, 1000},
		{"Prime cache size", 65536, 257},
		{"Cache larger than size", 512, 4096},
		{"Single byte cache", 300, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := quietFiller()
			cache := randomCache(42, tc.cacheSize)
			dataset := mem.AllocAligned(tc.size)

			require.NoError(t, f.RunWorker(dataset, 0, tc.size, cache, 0))

			for i := range dataset {
				require.Equal(t, cache[i%tc.cacheSize], dataset[i],
					"mismatch at offset %d", i)
			}
		})
	}
}

// A worker's source offset is relative to its own range, matching the
// per-worker contract: dataset[start+i] == cache[i mod cacheSize].
func TestRunWorkerRelativeOffset(t *testing.T) {
	f := quietFiller()
	cache := randomCache(7, 1000)
	dataset := mem.AllocAligned(8192)

	const start, size = 4096, 3000
	require.NoError(t, f.RunWorker(dataset, start, size, cache, 0))

	for i := 0; i < size; i++ {
		require.Equal(t, cache[i%len(cache)], dataset[start+i], "offset %d", i)
	}
	// Bytes outside the assigned range stay untouched.
	for i := 0; i < start; i++ {
		require.Zero(t, dataset[i], "offset %d", i)
	}
	for i := start + size; i < len(dataset); i++ {
		require.Zero(t, dataset[i], "offset %d", i)
	}
}

// Running the same worker twice over a fresh destination yields identical
// contents both times.
func TestRunWorkerIdempotent(t *testing.T) {
	f := quietFiller()
	cache := randomCache(11, 777)

	first := mem.AllocAligned(50_000)
	second := mem.AllocAligned(50_000)

	require.NoError(t, f.RunWorker(first, 0, len(first), cache, 1))
	require.NoError(t, f.RunWorker(second, 0, len(second), cache, 1))

	assert.Equal(t, first, second)
}

func TestRunWorkerZeroSize(t *testing.T) {
	f := quietFiller()
	dataset := make([]byte, 128)

	require.NoError(t, f.RunWorker(dataset, 0, 0, nil, 0))
	for _, b := range dataset {
		require.Zero(t, b)
	}
}

func TestRunWorkerOutOfRangeCore(t *testing.T) {
	// An out-of-range core id skips the binding and proceeds; it is a
	// no-op, not an error.
	f := quietFiller()
	cache := randomCache(3, 64)
	dataset := make([]byte, 256)

	require.NoError(t, f.RunWorker(dataset, 0, len(dataset), cache, 1<<20))
	require.NoError(t, f.RunWorker(dataset, 0, len(dataset), cache, -1))
}

func TestRunWorkerContractViolations(t *testing.T) {
	f := quietFiller()
	cache := randomCache(5, 64)
	dataset := make([]byte, 256)

	tests := []struct {
		name   string
		offset int
		size   int
	}{
		{"Negative offset", -1, 10},
		{"Negative size", 0, -10},
		{"Range past end", 128, 256},
		{"Offset past end", 512, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := f.RunWorker(dataset, tc.offset, tc.size, cache, 0)
			var boundsErr *RegionBoundsError
			require.ErrorAs(t, err, &boundsErr)
			assert.Equal(t, tc.offset, boundsErr.Offset)
			assert.Equal(t, tc.size, boundsErr.Size)
		})
	}

	t.Run("Empty cache", func(t *testing.T) {
		err := f.RunWorker(dataset, 0, len(dataset), nil, 0)
		require.ErrorIs(t, err, ErrEmptyCache)
	})
}

func TestRunDatasetInitWorker(t *testing.T) {
	cache := randomCache(9, 512)
	dataset := mem.AllocAligned(10_000)

	require.NoError(t, RunDatasetInitWorker(dataset, 0, len(dataset), cache, 0))
	for i := range dataset {
		require.Equal(t, cache[i%len(cache)], dataset[i], "offset %d", i)
	}
}

func TestRunWorkerRecordsMetrics(t *testing.T) {
	collector := &BasicMetricsCollector{}
	f := quietFiller(WithMetricsCollector(collector))

	cache := randomCache(13, 4096)
	dataset := mem.AllocAligned(256 << 10)

	require.NoError(t, f.RunWorker(dataset, 0, len(dataset), cache, 0))

	assert.Equal(t, int64(1), collector.WorkerCount.Load())
	assert.Equal(t, int64(len(dataset)), collector.BytesCopied.Load())
	assert.Positive(t, collector.ChunkCount.Load())
}

func BenchmarkRunWorker(b *testing.B) {
	f := quietFiller()
	cache := randomCache(17, 2<<20)
	dataset := mem.AllocAligned(32 << 20)

	b.SetBytes(int64(len(dataset)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := f.RunWorker(dataset, 0, len(dataset), cache, 0); err != nil {
			b.Fatal(err)
		}
	}
}

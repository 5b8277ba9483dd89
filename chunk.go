package rvfill

// Two chunk-size strategies coexist and are deliberately not reconciled:
//
//   - ComputeChunkSize governs how the total destination region is divided
//     across threads (megabyte scale).
//   - workerChunkSize governs how each worker sizes one prefetch+copy
//     iteration inside its range (kilobyte scale).

const (
	// Thread-partition chunk bounds.
	minPartitionChunk = 1 << 20
	maxPartitionChunk = 64 << 20

	// Per-iteration copy chunk bounds.
	minWorkerChunk = 4 << 10
	maxWorkerChunk = 64 << 10

	// A full barrier is issued every barrierInterval-th copy iteration,
	// bounding cross-core staleness without paying for a fence per chunk.
	barrierInterval = 16
)

// ComputeChunkSize derives the per-thread partition chunk size from the L2
// cache size and the thread count: l2CacheSize/numThreads clamped to
// [1 MiB, 64 MiB] and rounded up to the nearest cacheLineSize multiple.
// totalSize does not influence the result today; partitioning is driven by
// cache pressure, not by region size.
//
// numThreads >= 1 and cacheLineSize being a power of two are preconditions;
// violating them is a caller error, not a handled case.
func ComputeChunkSize(totalSize, numThreads, l2CacheSize, cacheLineSize int) int {
	_ = totalSize

	chunkSize := l2CacheSize / numThreads

	if chunkSize < minPartitionChunk {
		chunkSize = minPartitionChunk
	}
	if chunkSize > maxPartitionChunk {
		chunkSize = maxPartitionChunk
	}

	// Align to the cache-line boundary.
	return (chunkSize + cacheLineSize - 1) &^ (cacheLineSize - 1)
}

// workerChunkSize sizes one copy iteration inside a worker: a quarter of
// the L2 cache, clamped to [4 KiB, 64 KiB].
func workerChunkSize(topo Topology) int {
	chunkSize := topo.L2CacheSize / 4
	if chunkSize < minWorkerChunk {
		chunkSize = minWorkerChunk
	}
	if chunkSize > maxWorkerChunk {
		chunkSize = maxWorkerChunk
	}
	return chunkSize
}

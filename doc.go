// Package rvfill provides the memory and concurrency primitives used to
// initialize a large precomputed dataset in parallel from a smaller
// read-only cache buffer, tuned for RISC-V targets with portable fallbacks.
//
// # Architecture
//
// Leaf to root:
//
//   - capability snapshot: which ISA extensions (atomic, vector,
//     bit-manipulation) are usable, detected once per process
//   - atomic primitives and memory fences (internal/atomicops)
//   - dual-path bulk byte operations (internal/vector)
//   - cache-line-aware chunked copy with prefetch (internal/copier)
//   - per-worker dataset initialization (RunDatasetInitWorker)
//   - multi-worker orchestration (Filler.Fill)
//
// # Quick Start
//
//	cache := loadSeedBuffer()        // read-only during the fill
//	dataset := make([]byte, 2<<30)   // caller-owned destination
//
//	f := rvfill.New()
//	if err := f.Fill(context.Background(), dataset, cache); err != nil {
//	    log.Fatal(err)
//	}
//
// After Fill returns, dataset[i] == cache[i mod len(cache)] for every i:
// the cache is logically replicated across the dataset, wrapping
// cyclically when the dataset is larger.
//
// # Workers
//
// A single worker can also be driven directly, matching the orchestration
// the larger engine performs itself:
//
//	err := rvfill.RunDatasetInitWorker(dataset, start, size, cache, threadID)
//
// Workers pin themselves to a core when the platform allows it, copy their
// disjoint byte range in cache-sized chunks with software prefetch, and
// fence periodically so completed writes become visible to any thread that
// synchronizes after the worker finishes.
//
// # Concurrency model
//
// Worker destination ranges are disjoint, so the destination needs no
// locking. The cache buffer is shared and read-only during a fill. Mutable
// state shared across workers (the progress counter, the cancellation flag)
// is accessed through sync/atomic unconditionally; the capability-gated
// primitives in internal/atomicops model the target's extension set and may
// run a plain path, so they never carry cross-goroutine state.
package rvfill

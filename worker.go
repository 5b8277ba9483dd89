package rvfill

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/hupe1980/rvfill/internal/affinity"
	"github.com/hupe1980/rvfill/internal/atomicops"
	"github.com/hupe1980/rvfill/internal/copier"
)

// workerState tracks a fill worker through its lifecycle.
type workerState uint8

const (
	workerIdle workerState = iota
	workerAffinityBound
	workerFilling
	workerBarriered
	workerDone
)

func (s workerState) String() string {
	switch s {
	case workerIdle:
		return "idle"
	case workerAffinityBound:
		return "affinity-bound"
	case workerFilling:
		return "filling"
	case workerBarriered:
		return "barriered"
	case workerDone:
		return "done"
	default:
		return "unknown"
	}
}

// RunDatasetInitWorker runs one dataset-initialization worker with default
// configuration: it fills dataset[startOffset : startOffset+size] from the
// cache buffer, wrapping the cache cyclically. See Filler.RunWorker.
func RunDatasetInitWorker(dataset []byte, startOffset, size int, cache []byte, threadID int) error {
	return New().RunWorker(dataset, startOffset, size, cache, threadID)
}

// RunWorker fills dataset[startOffset : startOffset+size] from cache on the
// calling goroutine. The worker pins its OS thread to core threadID when
// the platform allows it (binding failure is logged, never fatal), copies
// its range in cache-sized chunks with software prefetch, issues a full
// barrier every 16th chunk, and fences once more after the loop so its
// writes are visible to any thread that synchronizes after completion.
//
// The effective source offset for destination offset i (relative to the
// worker's range) is i mod len(cache): the cache is logically replicated
// across the range. size == 0 completes trivially. An out-of-bounds range
// fails fast with a RegionBoundsError; an empty cache with ErrEmptyCache.
func (f *Filler) RunWorker(dataset []byte, startOffset, size int, cache []byte, threadID int) error {
	start := time.Now()
	err := f.runWorker(context.Background(), dataset, startOffset, size, cache, threadID, nil, 0)
	f.metrics.RecordWorker(threadID, time.Since(start), err)
	return err
}

// runWorker validates the range and runs the fill job. phase is the initial
// read position within cache; Fill uses it to keep the cyclic pattern
// continuous across worker boundaries.
func (f *Filler) runWorker(ctx context.Context, dataset []byte, startOffset, size int, cache []byte, threadID int, cancel *atomic.Uint32, phase int) error {
	if startOffset < 0 || size < 0 || startOffset+size > len(dataset) {
		return &RegionBoundsError{Offset: startOffset, Size: size, RegionLen: len(dataset)}
	}
	if size == 0 {
		return nil
	}
	if len(cache) == 0 {
		return ErrEmptyCache
	}

	job := &fillJob{
		filler:   f,
		ctx:      ctx,
		dst:      dataset[startOffset : startOffset+size],
		cache:    cache,
		phase:    phase,
		threadID: threadID,
		cancel:   cancel,
	}
	return job.run()
}

// fillJob is the per-worker state for one range fill.
type fillJob struct {
	filler   *Filler
	ctx      context.Context
	dst      []byte
	cache    []byte
	phase    int
	threadID int
	cancel   *atomic.Uint32
}

func (j *fillJob) run() error {
	f := j.filler
	logger := f.logger.WithThread(j.threadID)

	size := len(j.dst)
	cacheSize := len(j.cache)
	logger.Debug("worker state", "state", workerIdle)

	// Idle -> AffinityBound. Binding is best-effort: an out-of-range core
	// id or an unsupported platform leaves the thread unbound.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if j.threadID >= 0 && j.threadID < f.topology.NumCores {
		if err := affinity.Pin(j.threadID); err != nil {
			logger.Warn("core affinity binding failed; worker runs unbound",
				"core", j.threadID, "error", err)
			f.metrics.RecordAffinityMiss(j.threadID)
		}
	}
	logger.Debug("worker state", "state", workerAffinityBound)

	// AffinityBound -> Filling: order setup writes before the fill loop.
	atomicops.FullBarrier()
	logger.Debug("worker state", "state", workerFilling, "bytes", size)

	chunkSize := workerChunkSize(f.topology)
	lineSize := f.topology.CacheLineSize
	srcOffset := j.phase % cacheSize

	for offset, iter := 0, 0; offset < size; iter++ {
		// Cancellation is observed at chunk boundaries only; a chunk copy
		// is never interrupted mid-chunk.
		if j.cancel != nil && j.cancel.Load() != 0 {
			return context.Cause(j.ctx)
		}

		chunkLen := min(chunkSize, size-offset)

		if err := f.throttle(j.ctx, chunkLen); err != nil {
			return err
		}

		// The cache is logically replicated across the destination; the
		// chunk splits wherever the read position wraps.
		for copied := 0; copied < chunkLen; {
			seg := min(chunkLen-copied, cacheSize-srcOffset)
			src := j.cache[srcOffset : srcOffset+seg]

			copier.PrefetchSpan(src, lineSize)
			copier.CopyAligned(j.dst[offset+copied:offset+copied+seg], src, lineSize)

			copied += seg
			srcOffset += seg
			if srcOffset == cacheSize {
				srcOffset = 0
			}
		}

		f.progress.Add(uint64(chunkLen))
		f.metrics.RecordChunk(chunkLen)

		// Periodic fence: bounds cross-core staleness without paying for a
		// barrier on every chunk.
		if iter%barrierInterval == barrierInterval-1 {
			atomicops.FullBarrier()
		}

		offset += chunkLen
	}

	// Filling -> Barriered -> Done: publish every write to any observer
	// that synchronizes after this worker's completion.
	logger.Debug("worker state", "state", workerBarriered)
	atomicops.FullBarrier()
	logger.Debug("worker state", "state", workerDone, "bytes", size)

	return nil
}

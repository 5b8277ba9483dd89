package rvfill

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Filler runs dataset-initialization workers. The zero configuration
// (New()) detects the topology, derives the thread count from the dataset
// size and runs all workers concurrently without throttling.
//
// A Filler is safe for concurrent use; the progress counter is shared
// across all workers it runs.
type Filler struct {
	logger     *Logger
	metrics    MetricsCollector
	topology   Topology
	numThreads int

	sem     *semaphore.Weighted // nil: unbounded
	limiter *rate.Limiter       // nil: unlimited

	// progress counts bytes copied. Shared across workers, so it uses
	// the runtime's native atomics unconditionally; the capability-gated
	// primitives in internal/atomicops are never safe for this.
	progress atomic.Uint64
}

// New creates a Filler.
func New(optFns ...Option) *Filler {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	f := &Filler{
		logger:     o.logger,
		metrics:    o.metrics,
		topology:   o.topology.withDefaults(),
		numThreads: o.numThreads,
	}

	if o.maxConcurrent > 0 {
		f.sem = semaphore.NewWeighted(o.maxConcurrent)
	}
	if o.bytesPerSec > 0 {
		f.limiter = rate.NewLimiter(rate.Limit(o.bytesPerSec), o.bytesPerSec)
	}

	return f
}

// Topology returns the cache topology the Filler works against.
func (f *Filler) Topology() Topology {
	return f.topology
}

// Progress returns the total number of bytes copied by workers of this
// Filler so far.
func (f *Filler) Progress() int {
	return int(f.progress.Load())
}

// Fill initializes the whole dataset from cache in parallel. The dataset is
// split into disjoint per-thread ranges aligned to the cache line, so no
// two workers ever write the same line. After a successful Fill,
// dataset[i] == cache[i mod len(cache)] for every i.
//
// Cancelling ctx stops every worker at its next chunk boundary; no chunk
// is ever left partially copied because of cancellation. The dataset
// contents of unfinished ranges are unspecified after a cancelled fill.
func (f *Filler) Fill(ctx context.Context, dataset, cache []byte) error {
	if len(dataset) == 0 {
		return nil
	}
	if len(cache) == 0 {
		return ErrEmptyCache
	}

	threads := f.numThreads
	if threads == 0 {
		threads = ComputeOptimalThreadCount(len(dataset), f.topology.NumCores)
	}
	if threads < 1 {
		return ErrInvalidThreadCount
	}

	start := time.Now()

	// Partition into per-thread ranges rounded up to the cache line; the
	// final range carries the remainder.
	per := (len(dataset) + threads - 1) / threads
	line := f.topology.CacheLineSize
	per = (per + line - 1) &^ (line - 1)

	g, ctx := errgroup.WithContext(ctx)

	// Workers observe cancellation through a shared flag read at chunk
	// boundaries; the flag is flipped once the group context ends (caller
	// cancellation or a failed worker).
	var cancelFlag atomic.Uint32
	stop := context.AfterFunc(ctx, func() {
		cancelFlag.Store(1)
	})
	defer stop()

	workers := 0
	for off := 0; off < len(dataset); off += per {
		size := min(per, len(dataset)-off)
		threadID := workers
		workers++

		offset := off
		g.Go(func() error {
			if f.sem != nil {
				if err := f.sem.Acquire(ctx, 1); err != nil {
					return err
				}
				defer f.sem.Release(1)
			}

			workerStart := time.Now()
			// phase keeps the cyclic cache pattern continuous across the
			// range boundary.
			err := f.runWorker(ctx, dataset, offset, size, cache, threadID, &cancelFlag, offset%len(cache))
			f.metrics.RecordWorker(threadID, time.Since(workerStart), err)
			return err
		})
	}

	err := g.Wait()
	f.metrics.RecordFill(len(dataset), workers, time.Since(start), err)
	if err != nil {
		return err
	}

	f.logger.Info("dataset fill complete",
		"bytes", len(dataset), "workers", workers, "duration", time.Since(start))

	return nil
}

// throttle charges n bytes against the throughput budget, splitting the
// charge when n exceeds the bucket's burst size.
func (f *Filler) throttle(ctx context.Context, n int) error {
	if f.limiter == nil {
		return nil
	}
	for n > 0 {
		step := min(n, f.limiter.Burst())
		if err := f.limiter.WaitN(ctx, step); err != nil {
			return err
		}
		n -= step
	}
	return nil
}

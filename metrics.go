package rvfill

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting fill metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordChunk is called after each per-iteration chunk copy with the
	// number of bytes written.
	RecordChunk(bytes int)

	// RecordWorker is called when a worker completes its range.
	// duration is the total time taken, err is nil if successful.
	RecordWorker(threadID int, duration time.Duration, err error)

	// RecordAffinityMiss is called when a worker could not bind to its
	// core and proceeded unbound.
	RecordAffinityMiss(coreID int)

	// RecordFill is called after a whole Fill pass.
	// bytes is the dataset size, workers the number of worker ranges.
	RecordFill(bytes, workers int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordChunk(int)                           {}
func (NoopMetricsCollector) RecordWorker(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordAffinityMiss(int)                    {}
func (NoopMetricsCollector) RecordFill(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ChunkCount       atomic.Int64
	BytesCopied      atomic.Int64
	WorkerCount      atomic.Int64
	WorkerErrors     atomic.Int64
	WorkerTotalNanos atomic.Int64
	AffinityMisses   atomic.Int64
	FillCount        atomic.Int64
	FillErrors       atomic.Int64
	FillTotalNanos   atomic.Int64
}

func (m *BasicMetricsCollector) RecordChunk(bytes int) {
	m.ChunkCount.Add(1)
	m.BytesCopied.Add(int64(bytes))
}

func (m *BasicMetricsCollector) RecordWorker(threadID int, duration time.Duration, err error) {
	m.WorkerCount.Add(1)
	m.WorkerTotalNanos.Add(int64(duration))
	if err != nil {
		m.WorkerErrors.Add(1)
	}
}

func (m *BasicMetricsCollector) RecordAffinityMiss(coreID int) {
	m.AffinityMisses.Add(1)
}

func (m *BasicMetricsCollector) RecordFill(bytes, workers int, duration time.Duration, err error) {
	m.FillCount.Add(1)
	m.FillTotalNanos.Add(int64(duration))
	if err != nil {
		m.FillErrors.Add(1)
	}
}

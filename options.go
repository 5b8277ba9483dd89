package rvfill

import "log/slog"

type options struct {
	logger        *Logger
	metrics       MetricsCollector
	topology      Topology
	numThreads    int
	maxConcurrent int64
	bytesPerSec   int
}

// Option configures a Filler.
type Option func(*options)

// WithLogger sets the logger. Defaults to a text logger at Info level.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetricsCollector sets the metrics collector.
// Defaults to NoopMetricsCollector.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector != nil {
			o.metrics = collector
		}
	}
}

// WithTopology overrides the detected cache topology, e.g. with
// vendor-reported line and cache sizes. Zero fields keep their defaults.
func WithTopology(topo Topology) Option {
	return func(o *options) {
		o.topology = topo
	}
}

// WithNumThreads fixes the number of worker ranges a Fill uses instead of
// deriving it from the dataset size via ComputeOptimalThreadCount.
// Values < 1 are rejected at Fill time with ErrInvalidThreadCount.
func WithNumThreads(numThreads int) Option {
	return func(o *options) {
		o.numThreads = numThreads
	}
}

// WithMaxConcurrentWorkers bounds how many workers run at the same time.
// By default all worker ranges run concurrently. Useful when the fill
// shares the machine with latency-sensitive work.
func WithMaxConcurrentWorkers(n int) Option {
	return func(o *options) {
		o.maxConcurrent = int64(n)
	}
}

// WithThroughputLimit caps the aggregate fill throughput in bytes per
// second using a token bucket. Zero means unlimited.
func WithThroughputLimit(bytesPerSec int) Option {
	return func(o *options) {
		o.bytesPerSec = bytesPerSec
	}
}

func defaultOptions() options {
	return options{
		logger:   NewTextLogger(slog.LevelInfo),
		metrics:  NoopMetricsCollector{},
		topology: DetectTopology(),
	}
}

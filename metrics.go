package unisplit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example:
//
//	type PrometheusCollector struct {
//	    splitCounter   *prometheus.CounterVec
//	    splitHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSplit(op unisplit.Operation, elements, pieces int, d time.Duration, err error) {
//	    p.splitCounter.WithLabelValues(string(op)).Inc()
//	    p.splitHistogram.Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordSplit is called after each entry point call.
	// elements is the recycled iteration length, pieces the total number of
	// output strings, err is nil if successful.
	RecordSplit(op Operation, elements, pieces int, duration time.Duration, err error)

	// RecordSegmenterBuild is called whenever a boundary segmenter is built.
	RecordSegmenterBuild(kind string, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSplit(Operation, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSegmenterBuild(string, error)                    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SplitCount      atomic.Int64
	SplitErrors     atomic.Int64
	SplitTotalNanos atomic.Int64
	ElementCount    atomic.Int64
	PieceCount      atomic.Int64
	SegmenterBuilds atomic.Int64
	SegmenterErrors atomic.Int64
}

// RecordSplit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSplit(_ Operation, elements, pieces int, duration time.Duration, err error) {
	b.SplitCount.Add(1)
	b.SplitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SplitErrors.Add(1)
		return
	}
	b.ElementCount.Add(int64(elements))
	b.PieceCount.Add(int64(pieces))
}

// RecordSegmenterBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSegmenterBuild(_ string, err error) {
	b.SegmenterBuilds.Add(1)
	if err != nil {
		b.SegmenterErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SplitCount:      b.SplitCount.Load(),
		SplitErrors:     b.SplitErrors.Load(),
		SplitAvgNanos:   b.getAvgSplitNanos(),
		ElementCount:    b.ElementCount.Load(),
		PieceCount:      b.PieceCount.Load(),
		SegmenterBuilds: b.SegmenterBuilds.Load(),
		SegmenterErrors: b.SegmenterErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSplitNanos() int64 {
	count := b.SplitCount.Load()
	if count == 0 {
		return 0
	}
	return b.SplitTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SplitCount      int64
	SplitErrors     int64
	SplitAvgNanos   int64
	ElementCount    int64
	PieceCount      int64
	SegmenterBuilds int64
	SegmenterErrors int64
}

package qtree

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each insert.
	// err is nil if the point was stored.
	RecordInsert(duration time.Duration, err error)

	// RecordSearch is called after each circle query with the number of
	// points it matched.
	RecordSearch(results int, duration time.Duration)

	// RecordNearest is called after each nearest-neighbor query.
	RecordNearest(found bool, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error) {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration)   {}
func (NoopMetricsCollector) RecordNearest(bool, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use.
type BasicMetricsCollector struct {
	InsertCount       atomic.Int64
	InsertErrors      atomic.Int64
	InsertTotalNanos  atomic.Int64
	SearchCount       atomic.Int64
	SearchResults     atomic.Int64
	SearchTotalNanos  atomic.Int64
	NearestCount      atomic.Int64
	NearestMisses     atomic.Int64
	NearestTotalNanos atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(results int, duration time.Duration) {
	b.SearchCount.Add(1)
	b.SearchResults.Add(int64(results))
	b.SearchTotalNanos.Add(duration.Nanoseconds())
}

// RecordNearest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNearest(found bool, duration time.Duration) {
	b.NearestCount.Add(1)
	b.NearestTotalNanos.Add(duration.Nanoseconds())
	if !found {
		b.NearestMisses.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:     b.InsertCount.Load(),
		InsertErrors:    b.InsertErrors.Load(),
		InsertAvgNanos:  average(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		SearchCount:     b.SearchCount.Load(),
		SearchResults:   b.SearchResults.Load(),
		SearchAvgNanos:  average(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		NearestCount:    b.NearestCount.Load(),
		NearestMisses:   b.NearestMisses.Load(),
		NearestAvgNanos: average(b.NearestTotalNanos.Load(), b.NearestCount.Load()),
	}
}

func average(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount     int64
	InsertErrors    int64
	InsertAvgNanos  int64
	SearchCount     int64
	SearchResults   int64
	SearchAvgNanos  int64
	NearestCount    int64
	NearestMisses   int64
	NearestAvgNanos int64
}

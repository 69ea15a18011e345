package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// promCollector implements qtree.MetricsCollector.
type promCollector struct {
	opLatency *prometheus.HistogramVec
	inserts   *prometheus.CounterVec
	results   prometheus.Histogram
}

func newPromCollector(reg prometheus.Registerer) *promCollector {
	c := &promCollector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "qtree_operation_latency_seconds",
			Help:    "Latency of tree operations",
			Buckets: prometheus.ExponentialBuckets(1e-7, 4, 10),
		}, []string{"op"}),
		inserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "qtree_inserts_total",
			Help: "Inserts by outcome",
		}, []string{"status"}),
		results: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "qtree_search_results",
			Help:    "Points matched per circle query",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
	}
	reg.MustRegister(c.opLatency, c.inserts, c.results)
	return c
}

func (c *promCollector) RecordInsert(d time.Duration, err error) {
	c.opLatency.WithLabelValues("insert").Observe(d.Seconds())
	status := "ok"
	if err != nil {
		status = "rejected"
	}
	c.inserts.WithLabelValues(status).Inc()
}

func (c *promCollector) RecordSearch(results int, d time.Duration) {
	c.opLatency.WithLabelValues("search").Observe(d.Seconds())
	c.results.Observe(float64(results))
}

func (c *promCollector) RecordNearest(_ bool, d time.Duration) {
	c.opLatency.WithLabelValues("nearest").Observe(d.Seconds())
}

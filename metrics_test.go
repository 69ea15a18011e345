package qtree

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}
	tr := New[float64, int](0, 0, 100, 100, WithMetricsCollector(m))

	require.NoError(t, tr.Insert(10, 10, 1))
	require.NoError(t, tr.Insert(12, 12, 2))
	require.Error(t, tr.Insert(10, 10, 3))
	tr.Search(10, 10, 5)
	tr.Search(90, 90, 1)
	tr.FindNearest(10, 10, 5)
	tr.FindNearest(90, 90, 1)

	stats := m.GetStats()
	assert.Equal(t, int64(3), stats.InsertCount)
	assert.Equal(t, int64(1), stats.InsertErrors)
	assert.Equal(t, int64(2), stats.SearchCount)
	assert.Equal(t, int64(2), stats.SearchResults)
	assert.Equal(t, int64(2), stats.NearestCount)
	assert.Equal(t, int64(1), stats.NearestMisses)
	assert.GreaterOrEqual(t, stats.InsertAvgNanos, int64(0))
}

func TestEmptyStats(t *testing.T) {
	assert.Equal(t, BasicMetricsStats{}, (&BasicMetricsCollector{}).GetStats())
}

func TestNilOptionsFallBack(t *testing.T) {
	tr := New[float64, int](0, 0, 1, 1, WithLogger(nil), WithMetricsCollector(nil))
	assert.NotNil(t, tr.opts.logger)
	assert.Equal(t, NoopMetricsCollector{}, tr.opts.metrics)
	require.NoError(t, tr.Insert(0.5, 0.5, 0))
}

func TestDefaultsSkipInstrumentation(t *testing.T) {
	tr := New[float64, int](0, 0, 100, 100)
	assert.False(t, tr.timed)
	assert.False(t, tr.opts.logger.debugEnabled())
	require.NoError(t, tr.Insert(10, 10, 1))

	// only the rejected point and its PointError
	allocs := testing.AllocsPerRun(100, func() {
		_ = tr.Insert(10, 10, 2)
	})
	assert.LessOrEqual(t, allocs, 2.0)

	timed := New[float64, int](0, 0, 1, 1, WithMetricsCollector(&BasicMetricsCollector{}))
	assert.True(t, timed.timed)
}

func TestLoggerRecordsOperations(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tr := New[float64, int](0, 0, 100, 100, WithLogger(l))

	require.NoError(t, tr.Insert(10, 10, 1))
	require.Error(t, tr.Insert(200, 10, 2))
	tr.Search(10, 10, 5)
	tr.FindNearest(10, 10, 5)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	var entries []map[string]any
	for _, line := range lines {
		var e map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		entries = append(entries, e)
	}
	assert.Equal(t, "insert completed", entries[0]["msg"])
	assert.Equal(t, float64(1), entries[0]["count"])
	assert.Equal(t, "insert rejected", entries[1]["msg"])
	assert.Contains(t, entries[1]["error"], "out of bounds")
	assert.Equal(t, "search completed", entries[2]["msg"])
	assert.Equal(t, float64(1), entries[2]["results"])
	assert.Equal(t, "nearest completed", entries[3]["msg"])
	assert.Equal(t, true, entries[3]["found"])
}

func TestLoggerLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	tr := New[float64, int](0, 0, 100, 100, WithLogger(l))
	require.NoError(t, tr.Insert(10, 10, 1))
	assert.Empty(t, buf.String())
}

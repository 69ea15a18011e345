// Command qtree-bench fills a quadtree with random points and runs random
// circle queries against it, reporting what it finds and how long it took.
package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/robert-butts/qtree"
)

type query struct {
	x, y, r float64
}

type report struct {
	query
	points  []*qtree.Point[float64, int]
	nearest *qtree.Point[float64, int]
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	l := newLogger(cfg)

	opts := []qtree.Option{qtree.WithLogger(l)}
	reg := prometheus.NewRegistry()
	if cfg.MetricsAddr != "" {
		opts = append(opts, qtree.WithMetricsCollector(newPromCollector(reg)))
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	tree := qtree.NewSync[float64, int](0, 0, cfg.Extent, cfg.Extent, opts...)

	failed := 0
	start := time.Now()
	for i := 0; i != cfg.Points; i++ {
		if err := tree.Insert(rng.Float64()*cfg.Extent, rng.Float64()*cfg.Extent, i); err != nil {
			failed++
		}
	}
	l.Info("inserted", "points", tree.Len(), "failed", failed, "elapsed", time.Since(start))

	queries := make([]query, cfg.Queries)
	for i := range queries {
		queries[i] = query{
			x: rng.Float64() * cfg.Extent,
			y: rng.Float64() * cfg.Extent,
			r: 1 + rng.Float64()*(cfg.MaxRadius-1),
		}
	}
	start = time.Now()
	reports := runQueries(tree, queries, cfg.Readers)
	elapsed := time.Since(start)

	found := 0
	for i, rep := range reports {
		found += len(rep.points)
		printReport(i, rep)
	}
	l.Info("queried", "queries", len(queries), "found", found, "readers", cfg.Readers, "elapsed", elapsed)

	if cfg.MetricsAddr != "" {
		if err := serveMetrics(cfg.MetricsAddr, reg, l); err != nil {
			l.Error("metrics server failed", "error", err)
			os.Exit(1)
		}
	}
}

func newLogger(cfg config) *qtree.Logger {
	if cfg.LogFormat == "json" {
		return qtree.NewJSONLogger(cfg.LogLevel)
	}
	return qtree.NewTextLogger(cfg.LogLevel)
}

// runQueries answers every query with up to readers goroutines sharing the
// tree's read lock.
func runQueries(tree *qtree.SyncTree[float64, int], queries []query, readers int) []report {
	reports := make([]report, len(queries))
	var g errgroup.Group
	g.SetLimit(readers)
	for i, q := range queries {
		g.Go(func() error {
			points, _ := tree.Search(q.x, q.y, q.r)
			nearest, _ := tree.FindNearest(q.x, q.y, q.r)
			reports[i] = report{query: q, points: points, nearest: nearest}
			return nil
		})
	}
	// Readers never fail, so Wait only joins them.
	_ = g.Wait()
	return reports
}

func printReport(i int, rep report) {
	var b strings.Builder
	fmt.Fprintf(&b, "------------------------\n")
	fmt.Fprintf(&b, "i=%d, x=%f, y=%f, r=%f\n", i, rep.x, rep.y, rep.r)
	fmt.Fprintf(&b, "result count: %d\n", len(rep.points))
	for _, p := range rep.points {
		fmt.Fprintf(&b, "x=%f, y=%f, v=%d, d=%f\n", p.X(), p.Y(), p.Value(), distance(rep.x, rep.y, p))
	}
	fmt.Fprintf(&b, "------\n")
	if p := rep.nearest; p != nil {
		fmt.Fprintf(&b, "r=%f, x=%f, y=%f, v=%d, d=%f\n", rep.r, p.X(), p.Y(), p.Value(), distance(rep.x, rep.y, p))
	}
	fmt.Print(b.String())
}

func distance(x, y float64, p *qtree.Point[float64, int]) float64 {
	return math.Hypot(p.X()-x, p.Y()-y)
}

// serveMetrics blocks until the process is interrupted.
func serveMetrics(addr string, reg *prometheus.Registry, l *qtree.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	l.Info("serving metrics", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

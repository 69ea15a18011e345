package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type config struct {
	Points      int
	Queries     int
	Extent      float64
	MaxRadius   float64
	Seed        int64
	Readers     int
	LogLevel    slog.Level
	LogFormat   string
	MetricsAddr string
}

// loadConfig reads .env (if present), then the QTREE_* environment, then
// the command line. Later sources win.
func loadConfig(args []string) (config, error) {
	_ = godotenv.Load(".env")

	cfg := config{
		Points:    100000,
		Queries:   10,
		Extent:    10000,
		MaxRadius: 50,
		Seed:      time.Now().UnixNano(),
		Readers:   4,
		LogLevel:  slog.LevelInfo,
		LogFormat: "text",
	}
	var err error
	if cfg.Points, err = envInt("QTREE_POINTS", cfg.Points); err != nil {
		return cfg, err
	}
	if cfg.Queries, err = envInt("QTREE_QUERIES", cfg.Queries); err != nil {
		return cfg, err
	}
	if cfg.Readers, err = envInt("QTREE_READERS", cfg.Readers); err != nil {
		return cfg, err
	}
	if cfg.Extent, err = envFloat("QTREE_EXTENT", cfg.Extent); err != nil {
		return cfg, err
	}
	if cfg.MaxRadius, err = envFloat("QTREE_MAX_RADIUS", cfg.MaxRadius); err != nil {
		return cfg, err
	}
	if s := os.Getenv("QTREE_SEED"); s != "" {
		if cfg.Seed, err = strconv.ParseInt(s, 10, 64); err != nil {
			return cfg, fmt.Errorf("QTREE_SEED: %w", err)
		}
	}
	level := os.Getenv("QTREE_LOG_LEVEL")
	if f := os.Getenv("QTREE_LOG_FORMAT"); f != "" {
		cfg.LogFormat = strings.ToLower(f)
	}
	cfg.MetricsAddr = os.Getenv("QTREE_METRICS_ADDR")

	fs := flag.NewFlagSet("qtree-bench", flag.ContinueOnError)
	fs.IntVar(&cfg.Points, "points", cfg.Points, "number of random points to insert")
	fs.IntVar(&cfg.Queries, "queries", cfg.Queries, "number of random circle queries")
	fs.IntVar(&cfg.Readers, "readers", cfg.Readers, "concurrent query goroutines")
	fs.Float64Var(&cfg.Extent, "extent", cfg.Extent, "side length of the square plane")
	fs.Float64Var(&cfg.MaxRadius, "max-radius", cfg.MaxRadius, "upper bound of query radii")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	fs.StringVar(&level, "log-level", level, "debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "text or json")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return cfg, fmt.Errorf("log level: %w", err)
		}
	}

	switch {
	case cfg.Points < 0 || cfg.Queries < 0:
		return cfg, fmt.Errorf("points and queries must not be negative")
	case cfg.Readers < 1:
		return cfg, fmt.Errorf("readers must be at least 1")
	case cfg.Extent <= 0:
		return cfg, fmt.Errorf("extent must be positive")
	case cfg.MaxRadius < 1:
		return cfg, fmt.Errorf("max radius must be at least 1")
	}
	return cfg, nil
}

func envInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

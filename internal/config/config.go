// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - New(ctx) builds a Config holding defaults.
// - Load(ctx) layers defaults, an optional YAML file and SCOUT_* env vars.
package config

import (
	"context"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// LogFormat selects text or json log output.
	LogFormat string `koanf:"log_format"`
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`
	// PlayersPath, ReportsPath and ShortlistPath locate the three tables.
	// An empty path loads an empty table.
	PlayersPath   string `koanf:"players_path"`
	ReportsPath   string `koanf:"reports_path"`
	ShortlistPath string `koanf:"shortlist_path"`
	// MaxCards caps player cards per render pass; 0 means unlimited.
	MaxCards int `koanf:"max_cards"`

	// Metrics configures the Prometheus manager.
	MetricsEnabled   bool   `koanf:"metrics_enabled"`
	MetricsNamespace string `koanf:"metrics_namespace"`
	MetricsSubsystem string `koanf:"metrics_subsystem"`
	MetricsPrefix    string `koanf:"metrics_prefix"`
	// MetricsRefreshInterval is how often system gauges are refreshed, e.g. "10s".
	MetricsRefreshInterval time.Duration `koanf:"metrics_refresh_interval"`
	// MetricsLatencyBuckets overrides the latency histogram buckets (ms).
	MetricsLatencyBuckets []float64 `koanf:"metrics_latency_buckets"`
	// MetricsLabels are constant labels added to every metric.
	MetricsLabels map[string]string `koanf:"metrics_labels"`
}

// New creates a Config with defaults. The context is accepted first to
// follow the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:      "info",
		LogFormat:     "text",
		Addr:          ":9080",
		PlayersPath:   "data/players.csv",
		ReportsPath:   "data/reports.csv",
		ShortlistPath: "data/shortlist.csv",
		MaxCards:      0,

		MetricsEnabled:         true,
		MetricsNamespace:       "scoutboard",
		MetricsSubsystem:       "dashboard",
		MetricsRefreshInterval: 10 * time.Second,
	}
}

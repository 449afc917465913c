// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env on top.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// WorkerCount bounds the band aggregation fan-out across members.
	WorkerCount int `koanf:"worker_count"`

	// TouringSeed seeds the touring-member ability rolls. Zero means
	// time-seeded (non-deterministic).
	TouringSeed int64 `koanf:"touring_seed"`

	// TracksFile optionally points at a YAML file of extra track
	// configurations merged into the built-in skill catalog.
	TracksFile string `koanf:"tracks_file"`

	// SeedDemo loads a small demo roster and progress fixture at startup so
	// the read endpoints return data out of the box.
	SeedDemo bool `koanf:"seed_demo"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		Addr:        ":9080",
		WorkerCount: runtime.NumCPU() * 2,
		TouringSeed: 0,
		TracksFile:  "",
		SeedDemo:    false,
	}
}

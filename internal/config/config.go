// Package config handles configuration for the cache layer, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the local event cache.
type Config struct {
	// DatabasePath is the SQLite file location; ":memory:" for ephemeral use.
	DatabasePath string `env:"EVENTCACHE_DATABASE_PATH"`

	// RetentionPeriod is how long a cached record may live after ingestion.
	RetentionPeriod time.Duration `env:"EVENTCACHE_RETENTION_PERIOD"`

	// SweepInterval is how often the retention sweeper runs.
	SweepInterval time.Duration `env:"EVENTCACHE_SWEEP_INTERVAL"`

	// MemoCapacity is the per-store lookup memo size in entries.
	MemoCapacity int `env:"EVENTCACHE_MEMO_CAPACITY"`

	// MemoTTL bounds how long a memoized lookup may be served.
	MemoTTL time.Duration `env:"EVENTCACHE_MEMO_TTL"`
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "eventcache.db"
	c.RetentionPeriod = 24 * time.Hour
	c.SweepInterval = 15 * time.Minute
	c.MemoCapacity = 4096
	c.MemoTTL = time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// parseEnv overlays EVENTCACHE_* environment variables onto config.
// Unset variables leave the current values untouched.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}

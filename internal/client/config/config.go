// Package config handles configuration for the CLI client,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the accountd CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP endpoint.
//   - RequestTimeout: per-request deadline for API calls.
//   - SessionDuration: length of the client-side session countdown.
//   - MetadataDBPath: path of the local sqlite file caching session metadata.
type Config struct {
	ServerBaseURL   string
	RequestTimeout  time.Duration
	SessionDuration time.Duration
	MetadataDBPath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:3000"
	c.RequestTimeout = 5 * time.Second
	c.SessionDuration = 900 * time.Second
	c.MetadataDBPath = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

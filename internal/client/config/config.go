package config

import "time"

// Config holds runtime settings for the life-planning CLI.
//
// Fields:
//   - ServerBaseURL: scheme://host:port of the backend REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: path of the local sqlite file holding the session.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "lifeplan.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file
// in the working directory is loaded first if present; real environment
// variables win over it. Unset or malformed values leave the current
// value alone.
//
// Recognized variables:
//
//	LIFEPLAN_SERVER_BASE_URL
//	LIFEPLAN_REQUEST_TIMEOUT   Go duration string, e.g. "10s"
//	LIFEPLAN_DATABASE_PATH
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("LIFEPLAN_SERVER_BASE_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("LIFEPLAN_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("LIFEPLAN_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
}

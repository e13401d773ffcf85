package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variable names.
const (
	EnvPort          = "JSOND_PORT"
	EnvHost          = "JSOND_HOST"
	EnvSnapshotURL   = "JSOND_SNAPSHOT_URL"
	EnvSnapshotFiles = "JSOND_SNAPSHOT_FILES"
	EnvFetchTimeout  = "JSOND_FETCH_TIMEOUT"
	EnvLogLevel      = "JSOND_LOG_LEVEL"
	EnvLogFormat     = "JSOND_LOG_FORMAT"
	EnvCORSEnabled   = "JSOND_CORS_ENABLED"
)

// ApplyEnv overlays configuration from environment variables.
// It only sets values that are present in the environment.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}

	if v := os.Getenv(EnvHost); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv(EnvSnapshotURL); v != "" {
		cfg.SnapshotURL = v
	}

	// Comma-separated candidate paths, e.g. "db.json,fixtures/db.json".
	if v := os.Getenv(EnvSnapshotFiles); v != "" {
		var paths []string
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
		if len(paths) > 0 {
			cfg.SnapshotFiles = paths
		}
	}

	if v := os.Getenv(EnvFetchTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.FetchTimeout = d
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}

	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}

	if v := os.Getenv(EnvCORSEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.CORS.Enabled = enabled
		}
	}
}

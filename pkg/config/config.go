package config

import "time"

// Default server settings.
const (
	DefaultPort            = 3000
	DefaultFetchTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
)

// DefaultSnapshotFiles are the local snapshot candidates tried in order when
// no remote URL is configured or the remote fetch fails.
var DefaultSnapshotFiles = []string{"db.json", "data/db.json"}

// Config is the complete jsond server configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int `yaml:"port" json:"port"`

	// Host is the listen address. Empty binds all interfaces.
	Host string `yaml:"host,omitempty" json:"host,omitempty"`

	// SnapshotURL is the optional remote snapshot location. When set it is
	// tried before the local file candidates.
	SnapshotURL string `yaml:"snapshotUrl,omitempty" json:"snapshotUrl,omitempty"`

	// SnapshotFiles are local snapshot file candidates, tried in order.
	SnapshotFiles []string `yaml:"snapshotFiles,omitempty" json:"snapshotFiles,omitempty"`

	// FetchTimeout bounds the remote snapshot fetch.
	FetchTimeout time.Duration `yaml:"fetchTimeout,omitempty" json:"fetchTimeout,omitempty"`

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout,omitempty" json:"shutdownTimeout,omitempty"`

	// ReadTimeout and WriteTimeout are applied to the HTTP server.
	ReadTimeout  time.Duration `yaml:"readTimeout,omitempty" json:"readTimeout,omitempty"`
	WriteTimeout time.Duration `yaml:"writeTimeout,omitempty" json:"writeTimeout,omitempty"`

	// Log configures operational logging.
	Log LogConfig `yaml:"log,omitempty" json:"log,omitempty"`

	// CORS configures cross-origin request handling.
	CORS CORSConfig `yaml:"cors,omitempty" json:"cors,omitempty"`
}

// LogConfig configures the operational logger.
type LogConfig struct {
	// Level is the minimum level: debug, info, warn, error.
	Level string `yaml:"level,omitempty" json:"level,omitempty"`
	// Format is the output format: text or json.
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
}

// CORSConfig configures CORS handling for the API.
type CORSConfig struct {
	// Enabled turns CORS handling on. Default true; a mock data server is
	// meant to be called from browser apps on other origins.
	Enabled bool `yaml:"enabled" json:"enabled"`
	// AllowedOrigins lists allowed origins; ["*"] allows any.
	AllowedOrigins []string `yaml:"allowedOrigins,omitempty" json:"allowedOrigins,omitempty"`
	// AllowedMethods lists allowed methods for preflight responses.
	AllowedMethods []string `yaml:"allowedMethods,omitempty" json:"allowedMethods,omitempty"`
	// AllowedHeaders lists allowed request headers for preflight responses.
	AllowedHeaders []string `yaml:"allowedHeaders,omitempty" json:"allowedHeaders,omitempty"`
	// MaxAge is the preflight cache duration in seconds.
	MaxAge int `yaml:"maxAge,omitempty" json:"maxAge,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:            DefaultPort,
		SnapshotFiles:   append([]string(nil), DefaultSnapshotFiles...),
		FetchTimeout:    DefaultFetchTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		CORS: DefaultCORSConfig(),
	}
}

// DefaultCORSConfig returns permissive CORS settings suitable for a mock
// data server.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		Enabled:        true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         86400,
	}
}

// AllowOriginValue returns the Access-Control-Allow-Origin header value for
// the given request origin, or "" if the origin is not allowed.
func (c *CORSConfig) AllowOriginValue(origin string) string {
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" {
			return "*"
		}
		if allowed == origin {
			return origin
		}
	}
	return ""
}

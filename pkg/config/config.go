package config

import "time"

// Config is the root configuration for the plancheck service.
type Config struct {
	// Server configures the HTTP surface.
	Server ServerConfig `yaml:"server"`

	// Checklist configures which compliance checklist is active.
	Checklist ChecklistConfig `yaml:"checklist"`

	// Extraction configures PDF text extraction.
	Extraction ExtractionConfig `yaml:"extraction"`

	// Providers configures the narrative/chat AI providers, keyed by name.
	Providers map[string]ProviderConfig `yaml:"providers"`

	// Telemetry configures logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	// ListenAddress is the host:port the server binds to.
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading a request.
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration for writing a response. It also
	// bounds the per-request processing time via the timeout middleware.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum time to wait for the next request on a
	// keep-alive connection.
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes limits request header size.
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// MaxUploadBytes limits the size of an /analyze request body. Uploaded
	// plans arrive base64-encoded, so this is roughly 4/3 the PDF size.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// CORS configures cross-origin access. The service is designed to be
	// embedded in third-party pages, so this defaults to allow-all.
	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig configures cross-origin resource sharing.
type CORSConfig struct {
	Enabled        bool     `yaml:"enabled"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
	MaxAge         int      `yaml:"max_age"`
}

// ChecklistConfig selects the active compliance checklist.
type ChecklistConfig struct {
	// FilePath is a YAML checklist file. When empty, the built-in Dubai
	// Building Code 2021 checklist is used.
	FilePath string `yaml:"file_path"`

	// Watch enables hot reloading of FilePath on change.
	Watch bool `yaml:"watch"`

	// DebounceInterval is the quiet period before a reload is attempted.
	DebounceInterval time.Duration `yaml:"debounce_interval"`
}

// ExtractionConfig configures PDF text extraction.
type ExtractionConfig struct {
	// MaxPages bounds how many pages are read per uploaded document.
	MaxPages int `yaml:"max_pages"`
}

// ProviderConfig configures one narrative/chat AI provider.
type ProviderConfig struct {
	// BaseURL is the provider's API base (e.g. "https://api.openai.com/v1").
	BaseURL string `yaml:"base_url"`

	// APIKeyEnv names the environment variable holding the API key. Keys
	// are never placed in the config file itself.
	APIKeyEnv string `yaml:"api_key_env"`

	// Model is the model identifier to request.
	Model string `yaml:"model"`

	// Timeout bounds a single provider request.
	Timeout time.Duration `yaml:"timeout"`

	// MaxRetries is the retry budget for transient failures.
	MaxRetries int `yaml:"max_retries"`

	// HealthSchedule is a cron expression for periodic health probes
	// (e.g. "*/5 * * * *"). Empty disables scheduled probes.
	HealthSchedule string `yaml:"health_schedule"`
}

// TelemetryConfig configures logging and metrics.
type TelemetryConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is "json" or "text".
	Format string `yaml:"format"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
	Subsystem string `yaml:"subsystem"`

	// Path is where the exposition endpoint is mounted.
	Path string `yaml:"path"`
}

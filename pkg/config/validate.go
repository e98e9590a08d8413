package config

import (
	"fmt"
	"net"
	"strings"
)

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	// Field is the dotted configuration path (e.g. "server.listen_address").
	Field string

	// Message describes what is invalid.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration field %q: %s", e.Field, e.Message)
}

// Validate checks the configuration for invalid values. It returns the
// first problem found.
func Validate(cfg *Config) error {
	if err := validateServer(&cfg.Server); err != nil {
		return err
	}
	if err := validateChecklist(&cfg.Checklist); err != nil {
		return err
	}
	if cfg.Extraction.MaxPages < 1 {
		return &ValidationError{Field: "extraction.max_pages", Message: "must be at least 1"}
	}
	if err := validateProviders(cfg.Providers); err != nil {
		return err
	}
	if err := validateTelemetry(&cfg.Telemetry); err != nil {
		return err
	}
	return nil
}

func validateServer(server *ServerConfig) error {
	if server.ListenAddress == "" {
		return &ValidationError{Field: "server.listen_address", Message: "cannot be empty"}
	}
	if _, _, err := net.SplitHostPort(server.ListenAddress); err != nil {
		return &ValidationError{
			Field:   "server.listen_address",
			Message: fmt.Sprintf("must be host:port (%v)", err),
		}
	}

	if server.ReadTimeout <= 0 {
		return &ValidationError{Field: "server.read_timeout", Message: "must be positive"}
	}
	if server.WriteTimeout <= 0 {
		return &ValidationError{Field: "server.write_timeout", Message: "must be positive"}
	}
	if server.ShutdownTimeout <= 0 {
		return &ValidationError{Field: "server.shutdown_timeout", Message: "must be positive"}
	}
	if server.MaxUploadBytes <= 0 {
		return &ValidationError{Field: "server.max_upload_bytes", Message: "must be positive"}
	}
	return nil
}

func validateChecklist(checklist *ChecklistConfig) error {
	if checklist.Watch && checklist.FilePath == "" {
		return &ValidationError{
			Field:   "checklist.watch",
			Message: "watch requires checklist.file_path",
		}
	}
	if checklist.DebounceInterval < 0 {
		return &ValidationError{Field: "checklist.debounce_interval", Message: "cannot be negative"}
	}
	return nil
}

func validateProviders(providers map[string]ProviderConfig) error {
	for name, provider := range providers {
		if provider.BaseURL == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("providers.%s.base_url", name),
				Message: "cannot be empty",
			}
		}
		if !strings.HasPrefix(provider.BaseURL, "http://") && !strings.HasPrefix(provider.BaseURL, "https://") {
			return &ValidationError{
				Field:   fmt.Sprintf("providers.%s.base_url", name),
				Message: "must start with http:// or https://",
			}
		}
		if provider.Model == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("providers.%s.model", name),
				Message: "cannot be empty",
			}
		}
		if provider.Timeout <= 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("providers.%s.timeout", name),
				Message: "must be positive",
			}
		}
		if provider.MaxRetries < 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("providers.%s.max_retries", name),
				Message: "cannot be negative",
			}
		}
	}
	return nil
}

func validateTelemetry(telemetry *TelemetryConfig) error {
	switch telemetry.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("unknown level %q", telemetry.Logging.Level),
		}
	}

	switch telemetry.Logging.Format {
	case "json", "text":
	default:
		return &ValidationError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("unknown format %q", telemetry.Logging.Format),
		}
	}

	if telemetry.Metrics.Enabled && telemetry.Metrics.Path == "" {
		return &ValidationError{Field: "telemetry.metrics.path", Message: "cannot be empty"}
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path,
// applies defaults, and validates the result. Environment variables are not
// consulted; use LoadConfigWithEnvOverrides for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and then
// applies environment variable overrides. Variables follow the convention
// PLANCHECK_SECTION_FIELD (e.g. PLANCHECK_SERVER_LISTEN_ADDRESS) and always
// take precedence over the file.
//
// The loading sequence is:
//  1. Load YAML from file
//  2. Apply default values
//  3. Apply environment variable overrides
//  4. Validate the final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// Default returns a fully defaulted configuration without reading a file.
// It is used when no config file is supplied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	applyEnvOverrides(cfg)
	return cfg
}

// applyEnvOverrides applies PLANCHECK_* environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	// Server overrides
	if val := os.Getenv("PLANCHECK_SERVER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
	if val := os.Getenv("PLANCHECK_SERVER_READ_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if val := os.Getenv("PLANCHECK_SERVER_WRITE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}
	if val := os.Getenv("PLANCHECK_SERVER_MAX_UPLOAD_BYTES"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Server.MaxUploadBytes = i
		}
	}

	// Checklist overrides
	if val := os.Getenv("PLANCHECK_CHECKLIST_FILE_PATH"); val != "" {
		cfg.Checklist.FilePath = val
	}
	if val := os.Getenv("PLANCHECK_CHECKLIST_WATCH"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Checklist.Watch = b
		}
	}

	// Extraction overrides
	if val := os.Getenv("PLANCHECK_EXTRACTION_MAX_PAGES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Extraction.MaxPages = i
		}
	}

	// Telemetry overrides
	if val := os.Getenv("PLANCHECK_LOG_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("PLANCHECK_LOG_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("PLANCHECK_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}

	// Provider overrides for common provider names
	applyProviderEnvOverrides(cfg, "openai")
}

// applyProviderEnvOverrides applies overrides for one named provider,
// e.g. PLANCHECK_PROVIDER_OPENAI_BASE_URL.
func applyProviderEnvOverrides(cfg *Config, name string) {
	prefix := "PLANCHECK_PROVIDER_" + envName(name) + "_"

	provider, ok := cfg.Providers[name]
	changed := false

	if val := os.Getenv(prefix + "BASE_URL"); val != "" {
		provider.BaseURL = val
		changed = true
	}
	if val := os.Getenv(prefix + "MODEL"); val != "" {
		provider.Model = val
		changed = true
	}
	if val := os.Getenv(prefix + "TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			provider.Timeout = d
			changed = true
		}
	}

	if changed {
		if !ok {
			if cfg.Providers == nil {
				cfg.Providers = make(map[string]ProviderConfig)
			}
			if provider.Timeout == 0 {
				provider.Timeout = DefaultProviderTimeout
			}
			if provider.MaxRetries == 0 {
				provider.MaxRetries = DefaultProviderMaxRetries
			}
		}
		cfg.Providers[name] = provider
	}
}

// envName upper-cases a provider name for the environment convention.
func envName(name string) string {
	out := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c == '-' {
			c = '_'
		}
		out[i] = c
	}
	return string(out)
}

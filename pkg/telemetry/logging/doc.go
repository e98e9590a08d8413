// Package logging configures the process-wide structured logger.
//
// Logging is built directly on log/slog: Setup parses the configured level
// and format, builds the matching handler, and installs it as the slog
// default so every package logs through the same pipeline.
package logging

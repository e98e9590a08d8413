package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"plancheck-hq/plancheck/pkg/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLevel(%q): expected error, got nil", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevel(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetupWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer

	logger, err := SetupWithWriter(config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("evaluation complete", "pass_rate", 20)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["msg"] != "evaluation complete" {
		t.Errorf("unexpected msg %v", entry["msg"])
	}
	if entry["pass_rate"] != float64(20) {
		t.Errorf("unexpected pass_rate %v", entry["pass_rate"])
	}
}

func TestSetupWithWriterFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer

	logger, err := SetupWithWriter(config.LoggingConfig{Level: "warn", Format: "text"}, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("should be dropped")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Error("info entry logged despite warn level")
	}
	if !strings.Contains(out, "should appear") {
		t.Error("warn entry missing")
	}
}

func TestSetupWithWriterUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if _, err := SetupWithWriter(config.LoggingConfig{Level: "info", Format: "xml"}, &buf); err == nil {
		t.Error("expected error for unknown format, got nil")
	}
}

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"plancheck-hq/plancheck/pkg/checklist"
	"plancheck-hq/plancheck/pkg/config"
	"plancheck-hq/plancheck/pkg/providers"
)

// staticExtractor satisfies handlers.TextExtractor for routing tests.
type staticExtractor struct{ text string }

func (s *staticExtractor) Text(data []byte) (string, error) { return s.text, nil }

// emptyManager satisfies handlers.ProviderManager with no providers.
type emptyManager struct{}

func (emptyManager) GetProvider(name string) (providers.Provider, error) {
	return nil, &providers.NotFoundError{Provider: name}
}
func (emptyManager) GetHealthyProviders() []string               { return nil }
func (emptyManager) Health() map[string]providers.ProviderHealth { return nil }
func (emptyManager) ProviderCount() int                          { return 0 }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	store := checklist.NewStore(checklist.DefaultRegistry())
	return NewServer(cfg, store, &staticExtractor{text: "plan text"}, emptyManager{}, "openai", nil)
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.Handler()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"landing page", http.MethodGet, "/", http.StatusOK},
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"ready", http.MethodGet, "/ready", http.StatusOK},
		{"provider health", http.MethodGet, "/health/providers", http.StatusOK},
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound},
		{"analyze rejects GET", http.MethodGet, "/analyze", http.StatusMethodNotAllowed},
		{"chat without provider degrades", http.MethodPost, "/chat", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestServer_AnalyzeThroughStack(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.Handler()

	body := `{"file_data": "` +
		// base64 of "%PDF-1.4"
		"JVBERi0xLjQ=" + `"}`

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected request ID header from middleware chain")
	}

	var report struct {
		Status   string `json:"status"`
		PassRate int    `json:"pass_rate"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if report.Status != "ok" {
		t.Errorf("status field = %q, want ok", report.Status)
	}
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	srv := newTestServer(t)

	if srv.IsRunning() {
		t.Error("server should not be running before Start")
	}

	// Shutdown on a never-started server is a no-op.
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
}

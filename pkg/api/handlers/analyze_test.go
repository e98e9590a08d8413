package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"plancheck-hq/plancheck/pkg/checklist"
	"plancheck-hq/plancheck/pkg/compliance"
	"plancheck-hq/plancheck/pkg/config"
	"plancheck-hq/plancheck/pkg/telemetry/metrics"
)

// stubExtractor returns canned text or an error.
type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Text(data []byte) (string, error) {
	return s.text, s.err
}

func newTestStore(t *testing.T) *checklist.Store {
	t.Helper()
	return checklist.NewStore(checklist.DefaultRegistry())
}

func postAnalyze(t *testing.T, handler http.Handler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestAnalyzeHandler_Success(t *testing.T) {
	// Document text satisfying the door and handrail rules only.
	extractor := &stubExtractor{text: "door width is 1000mm, handrail height 1000mm"}
	handler := NewAnalyzeHandler(newTestStore(t), extractor, nil)

	body, _ := json.Marshal(AnalyzeRequest{
		FileData: base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 stub")),
	})

	w := postAnalyze(t, handler, body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var report compliance.Report
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}

	if report.Status != compliance.StatusOK {
		t.Errorf("status = %q, want %q", report.Status, compliance.StatusOK)
	}
	if report.PassRate != 20 {
		t.Errorf("pass rate = %d, want 20", report.PassRate)
	}
	if len(report.Failed) != 8 {
		t.Errorf("failed count = %d, want 8", len(report.Failed))
	}
}

func TestAnalyzeHandler_InputErrors(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{"not JSON", []byte("not json at all")},
		{"missing file data", []byte(`{}`)},
		{"empty file data", []byte(`{"file_data": ""}`)},
		{"invalid base64", []byte(`{"file_data": "!!!not-base64!!!"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := &stubExtractor{text: "irrelevant"}
			handler := NewAnalyzeHandler(newTestStore(t), extractor, nil)

			w := postAnalyze(t, handler, tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}

			var resp map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp["status"] != "error" {
				t.Errorf("status field = %q, want %q", resp["status"], "error")
			}
			if resp["message"] == "" {
				t.Error("expected a message in the error envelope")
			}
		})
	}
}

func TestAnalyzeHandler_ExtractionFailure(t *testing.T) {
	extractor := &stubExtractor{err: errors.New("not a pdf")}
	handler := NewAnalyzeHandler(newTestStore(t), extractor, nil)

	body, _ := json.Marshal(AnalyzeRequest{
		FileData: base64.StdEncoding.EncodeToString([]byte("garbage")),
	})

	w := postAnalyze(t, handler, body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestAnalyzeHandler_MethodNotAllowed(t *testing.T) {
	handler := NewAnalyzeHandler(newTestStore(t), &stubExtractor{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}

func TestAnalyzeHandler_RejectRecordsInputErrorStatus(t *testing.T) {
	collector := metrics.NewCollector(&config.MetricsConfig{
		Enabled:   true,
		Namespace: "plancheck",
		Subsystem: "service",
		Path:      "/metrics",
	}, nil)
	handler := NewAnalyzeHandler(newTestStore(t), &stubExtractor{}, collector)

	w := postAnalyze(t, handler, []byte(`{"file_data": ""}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `plancheck_service_evaluations_total{status="input_error"} 1`) {
		t.Error("rejected upload not counted under the input_error status")
	}
	if strings.Contains(body, `plancheck_service_evaluations_total{status="error"}`) {
		t.Error("rejected upload counted under an undocumented status label")
	}
}

func TestAnalyzeHandler_EmptyDocumentFailsEverything(t *testing.T) {
	extractor := &stubExtractor{text: ""}
	handler := NewAnalyzeHandler(newTestStore(t), extractor, nil)

	body, _ := json.Marshal(AnalyzeRequest{
		FileData: base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 stub")),
	})

	w := postAnalyze(t, handler, body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var report compliance.Report
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}

	if report.PassRate != 0 {
		t.Errorf("pass rate = %d, want 0", report.PassRate)
	}
	if len(report.Failed) != checklist.DefaultRegistry().Len() {
		t.Errorf("failed count = %d, want every rule", len(report.Failed))
	}
}

package handlers

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"plancheck-hq/plancheck/pkg/api/middleware"
	"plancheck-hq/plancheck/pkg/compliance"
	"plancheck-hq/plancheck/pkg/extract"
	"plancheck-hq/plancheck/pkg/telemetry/metrics"
)

// AnalyzeHandler evaluates an uploaded building plan against the active
// checklist. The upload is a JSON body with the PDF base64-encoded in
// file_data.
type AnalyzeHandler struct {
	registries RegistrySource
	extractor  TextExtractor
	metrics    *metrics.Collector
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(registries RegistrySource, extractor TextExtractor, collector *metrics.Collector) *AnalyzeHandler {
	return &AnalyzeHandler{
		registries: registries,
		extractor:  extractor,
		metrics:    collector,
	}
}

// ServeHTTP implements http.Handler for POST /analyze.
func (h *AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.reject(w, requestID, "Invalid JSON body.")
		return
	}

	if req.FileData == "" {
		h.reject(w, requestID, "No file data received.")
		return
	}

	pdfBytes, err := base64.StdEncoding.DecodeString(req.FileData)
	if err != nil {
		h.reject(w, requestID, "File data is not valid base64.")
		return
	}

	text, err := h.extractor.Text(pdfBytes)
	if err != nil {
		slog.Warn("document extraction failed",
			"request_id", requestID,
			"error", err,
		)
		h.reject(w, requestID, "Could not read PDF document.")
		return
	}

	registry := h.registries.Active()
	report := compliance.Evaluate(extract.Normalize(text), registry)

	if h.metrics != nil {
		h.metrics.Evaluation.RecordEvaluation(report.Status, report.PassRate, time.Since(start))
		for _, failure := range report.Failed {
			h.metrics.Evaluation.RecordRuleFailure(failure.Code)
		}
	}

	slog.Info("plan evaluated",
		"request_id", requestID,
		"checklist_version", registry.Version(),
		"rules", registry.Len(),
		"pass_rate", report.PassRate,
		"failed", len(report.Failed),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	writeJSON(w, http.StatusOK, report)
}

// reject records an input error and writes the 400 envelope. The rule
// engine is never invoked for rejected uploads.
func (h *AnalyzeHandler) reject(w http.ResponseWriter, requestID, message string) {
	if h.metrics != nil {
		h.metrics.Evaluation.RecordEvaluation("input_error", 0, 0)
	}

	slog.Warn("analyze request rejected",
		"request_id", requestID,
		"reason", message,
	)

	writeError(w, http.StatusBadRequest, message)
}

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"plancheck-hq/plancheck/pkg/api/middleware"
	"plancheck-hq/plancheck/pkg/providers"
	"plancheck-hq/plancheck/pkg/telemetry/metrics"
)

// systemPrompt frames every chat question for the narrative provider.
const systemPrompt = "You are an AI Building Compliance Engineer using the Dubai Building Code 2021 (" +
	codeReference + "). Answer clearly and professionally, citing code sections when possible."

// ChatHandler answers building-code questions through a narrative provider.
type ChatHandler struct {
	manager      ProviderManager
	providerName string
	metrics      *metrics.Collector
}

// NewChatHandler creates a new chat handler bound to the named provider.
func NewChatHandler(manager ProviderManager, providerName string, collector *metrics.Collector) *ChatHandler {
	return &ChatHandler{
		manager:      manager,
		providerName: providerName,
		metrics:      collector,
	}
}

// ServeHTTP implements http.Handler for POST /chat.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	requestID := middleware.GetRequestID(r.Context())

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "No message received.")
		return
	}

	provider, err := h.manager.GetProvider(h.providerName)
	if err != nil {
		h.degrade(w, requestID, err)
		return
	}

	completionReq := &providers.CompletionRequest{
		Messages: []providers.Message{
			{Role: providers.RoleSystem, Content: systemPrompt},
			{Role: providers.RoleUser, Content: req.Message},
		},
	}

	start := time.Now()
	resp, err := provider.SendCompletion(r.Context(), completionReq)
	if h.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		h.metrics.Provider.RecordRequest(h.providerName, status, time.Since(start))
	}
	if err != nil {
		h.degrade(w, requestID, err)
		return
	}

	slog.Info("chat answered",
		"request_id", requestID,
		"provider", h.providerName,
		"model", resp.Model,
		"tokens", resp.Usage.TotalTokens,
	)

	writeJSON(w, http.StatusOK, ChatResponse{Reply: resp.Content})
}

// degrade answers with an apologetic reply when the provider fails.
// The reply payload keeps the same shape so embedding pages render it.
func (h *ChatHandler) degrade(w http.ResponseWriter, requestID string, err error) {
	slog.Error("chat provider failed",
		"request_id", requestID,
		"provider", h.providerName,
		"error", err,
	)

	reply := fmt.Sprintf("⚠️ AI could not process your question: %v", err)
	writeJSON(w, http.StatusBadGateway, ChatResponse{Reply: reply})
}

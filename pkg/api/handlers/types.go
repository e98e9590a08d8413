package handlers

import (
	"encoding/json"
	"net/http"

	"plancheck-hq/plancheck/pkg/api/types"
	"plancheck-hq/plancheck/pkg/checklist"
	"plancheck-hq/plancheck/pkg/providers"
)

// RegistrySource yields the active checklist registry.
// *checklist.Store satisfies this.
type RegistrySource interface {
	Active() *checklist.Registry
}

// TextExtractor pulls plain text out of an uploaded document.
// *extract.Extractor satisfies this.
type TextExtractor interface {
	Text(data []byte) (string, error)
}

// ProviderManager is the interface for the narrative provider registry.
// *providers.Manager satisfies this.
type ProviderManager interface {
	GetProvider(name string) (providers.Provider, error)
	GetHealthyProviders() []string
	Health() map[string]providers.ProviderHealth
	ProviderCount() int
}

// AnalyzeRequest is the request body for POST /analyze.
type AnalyzeRequest struct {
	// FileData is the base64-encoded PDF document.
	FileData string `json:"file_data"`
}

// ChatRequest is the request body for POST /chat.
type ChatRequest struct {
	// Message is the user's question.
	Message string `json:"message"`
}

// ChatResponse is the response body for POST /chat.
type ChatResponse struct {
	// Reply is the assistant's answer.
	Reply string `json:"reply"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError writes the error envelope with the given status code.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, types.NewErrorResponse(message))
}

package providers

import "time"

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Finish reasons in normalized responses.
const (
	FinishReasonStop   = "stop"
	FinishReasonLength = "length"
)

// Message represents a single message in a conversation. It is
// provider-agnostic and transformed to provider-specific formats by each
// adapter.
type Message struct {
	// Role identifies the message sender (system, user, assistant).
	Role string `json:"role"`

	// Content is the message text.
	Content string `json:"content"`
}

// TokenUsage tracks token consumption for a request.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CompletionRequest represents a provider-agnostic completion request.
type CompletionRequest struct {
	// Model is the model identifier. When empty, the provider's configured
	// default model is used.
	Model string `json:"model"`

	// Messages is the conversation history.
	Messages []Message `json:"messages"`

	// Temperature controls randomness (0.0 to 2.0). Zero means the
	// provider default.
	Temperature float64 `json:"temperature,omitempty"`

	// MaxTokens is the maximum number of tokens to generate. Zero means
	// the provider default.
	MaxTokens int `json:"max_tokens,omitempty"`
}

// CompletionResponse represents a normalized completion response.
type CompletionResponse struct {
	// ID is the provider's response identifier.
	ID string `json:"id"`

	// Model is the model that generated the response.
	Model string `json:"model"`

	// Content is the generated text of the first choice.
	Content string `json:"content"`

	// FinishReason is why generation stopped.
	FinishReason string `json:"finish_reason"`

	// Usage is the token accounting, when reported by the provider.
	Usage TokenUsage `json:"usage"`
}

// ProviderConfig contains the configuration for one provider adapter.
type ProviderConfig struct {
	// Name is the provider's configured name (map key in the service
	// configuration).
	Name string

	// BaseURL is the API base (e.g. "https://api.openai.com/v1").
	BaseURL string

	// APIKey authenticates requests. Resolved from the environment at
	// startup; never logged.
	APIKey string

	// Model is the default model identifier.
	Model string

	// Timeout bounds a single request including retries' individual
	// attempts.
	Timeout time.Duration

	// MaxRetries is the retry budget for transient errors.
	MaxRetries int

	// Connection pooling knobs.
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
}

// ProviderHealth captures a provider's health state.
type ProviderHealth struct {
	// IsHealthy is the circuit-breaker state: false after three
	// consecutive failures, true again after a success.
	IsHealthy bool

	// LastCheck is when the state was last updated.
	LastCheck time.Time

	// ConsecutiveFailures counts failures since the last success.
	ConsecutiveFailures int

	// LastError is the most recent failure, nil when healthy.
	LastError error

	// LastSuccessfulRequest is when a request last succeeded.
	LastSuccessfulRequest time.Time

	// TotalRequests and FailedRequests are lifetime counters.
	TotalRequests  int64
	FailedRequests int64
}

package providers

import "context"

// Provider is the interface all AI provider adapters implement. It gives
// the request layer a uniform way to send a completion request and observe
// provider health.
//
// All methods accept a context.Context for cancellation and timeout
// control; implementations must respect cancellation and return promptly
// when the context is done.
type Provider interface {
	// SendCompletion sends a completion request and returns the normalized
	// response. Transient errors are retried with exponential backoff;
	// authentication and rate-limit errors are returned immediately as
	// typed errors.
	SendCompletion(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// HealthCheck performs a lightweight request to verify the provider is
	// reachable and responding. Returns nil when healthy.
	HealthCheck(ctx context.Context) error

	// GetName returns the provider's configured name (e.g. "openai").
	GetName() string

	// GetConfig returns the provider's configuration.
	GetConfig() ProviderConfig

	// IsHealthy returns the current health status, as updated by requests
	// and scheduled probes.
	IsHealthy() bool

	// GetHealth returns detailed health information.
	GetHealth() ProviderHealth

	// Close releases the provider's resources. The provider must not be
	// used after Close.
	Close() error
}

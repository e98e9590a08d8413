package handlers

import (
	"net/http"
	"time"
)

// HealthHandler handles health check requests for liveness probes.
type HealthHandler struct{}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// ServeHTTP implements http.Handler for liveness checks.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}

// ReadyHandler handles readiness check requests. The service is ready once
// a checklist registry is loaded; provider health is reported but does not
// gate readiness, since /analyze works without any provider.
type ReadyHandler struct {
	registries RegistrySource
	manager    ProviderManager
}

// NewReadyHandler creates a new readiness check handler.
func NewReadyHandler(registries RegistrySource, manager ProviderManager) *ReadyHandler {
	return &ReadyHandler{
		registries: registries,
		manager:    manager,
	}
}

// ServeHTTP implements http.Handler for readiness checks.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	registry := h.registries.Active()
	isReady := registry != nil

	status := "ready"
	statusCode := http.StatusOK
	if !isReady {
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	response := map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Unix(),
	}

	if registry != nil {
		response["checklist"] = map[string]interface{}{
			"version": registry.Version(),
			"rules":   registry.Len(),
		}
	}

	if h.manager != nil {
		response["providers"] = map[string]interface{}{
			"configured": h.manager.ProviderCount(),
			"healthy":    len(h.manager.GetHealthyProviders()),
		}
	}

	writeJSON(w, statusCode, response)
}

// ProviderHealthHandler provides detailed provider health information.
type ProviderHealthHandler struct {
	manager ProviderManager
}

// NewProviderHealthHandler creates a new provider health handler.
func NewProviderHealthHandler(manager ProviderManager) *ProviderHealthHandler {
	return &ProviderHealthHandler{manager: manager}
}

// ServeHTTP implements http.Handler for detailed provider health.
func (h *ProviderHealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	providersHealth := make(map[string]interface{})
	if h.manager != nil {
		for name, health := range h.manager.Health() {
			var lastError interface{}
			if health.LastError != nil {
				lastError = health.LastError.Error()
			}

			providersHealth[name] = map[string]interface{}{
				"healthy":              health.IsHealthy,
				"last_check":           health.LastCheck.Unix(),
				"consecutive_failures": health.ConsecutiveFailures,
				"last_error":           lastError,
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"providers": providersHealth,
	})
}

package providers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Manager holds the registered narrative providers and runs their
// scheduled health probes. Probes use cron syntax (e.g. "*/5 * * * *"
// for every five minutes); a provider without a schedule is only
// health-checked on demand.
type Manager struct {
	providers map[string]Provider
	cron      *cron.Cron
	mu        sync.RWMutex
	logger    *slog.Logger
	running   bool
}

// NewManager creates an empty provider manager.
func NewManager() *Manager {
	return &Manager{
		providers: make(map[string]Provider),
		cron:      cron.New(),
		logger:    slog.Default().With("component", "providers.manager"),
	}
}

// Register adds a provider and optionally schedules its health probe.
// Registering a second provider under the same name is a configuration
// mistake and returns an error.
func (m *Manager) Register(provider Provider, healthSchedule string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := provider.GetName()
	if _, exists := m.providers[name]; exists {
		return &ConfigError{
			Provider: name,
			Message:  "provider already registered",
		}
	}
	m.providers[name] = provider

	if healthSchedule == "" {
		return nil
	}

	if _, err := cron.ParseStandard(healthSchedule); err != nil {
		return fmt.Errorf("invalid health schedule %q for provider %q: %w",
			healthSchedule, name, err)
	}

	_, err := m.cron.AddFunc(healthSchedule, func() {
		m.probe(name)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule health probe for provider %q: %w", name, err)
	}

	m.logger.Info("provider registered",
		"provider", name,
		"health_schedule", healthSchedule,
	)

	return nil
}

// Start begins the scheduled health probes and stops them when the
// context is cancelled.
func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return
	}

	m.cron.Start()
	m.running = true
	m.logger.Info("provider health probes started")

	go func() {
		<-ctx.Done()
		m.Stop()
	}()
}

// probe runs a single health check against the named provider.
func (m *Manager) probe(name string) {
	m.mu.RLock()
	provider, ok := m.providers[name]
	m.mu.RUnlock()
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	err := provider.HealthCheck(ctx)
	if err != nil {
		m.logger.Warn("provider health probe failed",
			"provider", name,
			"duration", time.Since(start),
			"error", err,
		)
		return
	}

	m.logger.Debug("provider health probe succeeded",
		"provider", name,
		"duration", time.Since(start),
	)
}

// GetProvider returns the named provider, or a NotFoundError.
func (m *Manager) GetProvider(name string) (Provider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	provider, ok := m.providers[name]
	if !ok {
		return nil, &NotFoundError{Provider: name}
	}
	return provider, nil
}

// GetHealthyProviders returns the names of providers currently
// reporting healthy.
func (m *Manager) GetHealthyProviders() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	healthy := make([]string, 0, len(m.providers))
	for name, provider := range m.providers {
		if provider.IsHealthy() {
			healthy = append(healthy, name)
		}
	}
	return healthy
}

// Health returns a snapshot of every provider's health, keyed by name.
func (m *Manager) Health() map[string]ProviderHealth {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := make(map[string]ProviderHealth, len(m.providers))
	for name, provider := range m.providers {
		snapshot[name] = provider.GetHealth()
	}
	return snapshot
}

// ProviderCount returns the number of registered providers.
func (m *Manager) ProviderCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.providers)
}

// Stop stops the health probes and waits for in-flight probes to finish.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	ctx := m.cron.Stop()
	<-ctx.Done()
	m.running = false
	m.logger.Info("provider health probes stopped")
}

// Close stops the probes and closes every provider.
func (m *Manager) Close() error {
	m.Stop()

	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for name, provider := range m.providers {
		if err := provider.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close provider %q: %w", name, err)
		}
	}
	return firstErr
}

package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"plancheck-hq/plancheck/pkg/api/handlers"
	"plancheck-hq/plancheck/pkg/api/middleware"
	"plancheck-hq/plancheck/pkg/config"
	"plancheck-hq/plancheck/pkg/telemetry/metrics"
)

// Server is the HTTP server for the compliance screening service.
type Server struct {
	config          *config.Config
	httpServer      *http.Server
	registries      handlers.RegistrySource
	extractor       handlers.TextExtractor
	providerManager handlers.ProviderManager
	chatProvider    string
	metrics         *metrics.Collector
	shutdownChan    chan struct{}
	shutdownOnce    sync.Once
	mu              sync.RWMutex
	isRunning       bool
}

// NewServer creates a new server. chatProvider names the provider the /chat
// endpoint uses; it may be empty when no provider is configured. collector
// may be nil when metrics are disabled.
func NewServer(cfg *config.Config, registries handlers.RegistrySource, extractor handlers.TextExtractor, pm handlers.ProviderManager, chatProvider string, collector *metrics.Collector) *Server {
	return &Server{
		config:          cfg,
		registries:      registries,
		extractor:       extractor,
		providerManager: pm,
		chatProvider:    chatProvider,
		metrics:         collector,
		shutdownChan:    make(chan struct{}),
		isRunning:       false,
	}
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	// Create router with middleware chain
	handler := s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:           s.config.Server.ListenAddress,
		Handler:        handler,
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		IdleTimeout:    s.config.Server.IdleTimeout,
		MaxHeaderBytes: s.config.Server.MaxHeaderBytes,
	}

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			"address", s.config.Server.ListenAddress,
		)

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Set up signal handlers
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		slog.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		slog.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		slog.Info("shutdown requested")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		slog.Info("initiating graceful shutdown",
			"timeout", s.config.Server.ShutdownTimeout.String(),
		)

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		slog.Info("server stopped")
	})

	return shutdownErr
}

// setupRoutes configures HTTP routes and middleware chain.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// Create handlers
	homeHandler := handlers.NewHomeHandler()
	analyzeHandler := handlers.NewAnalyzeHandler(s.registries, s.extractor, s.metrics)
	chatHandler := handlers.NewChatHandler(s.providerManager, s.chatProvider, s.metrics)
	healthHandler := handlers.NewHealthHandler()
	readyHandler := handlers.NewReadyHandler(s.registries, s.providerManager)
	providerHealthHandler := handlers.NewProviderHealthHandler(s.providerManager)

	// Register routes
	mux.Handle("/", homeHandler)
	mux.Handle("/analyze", s.limitBody(analyzeHandler))
	mux.Handle("/chat", chatHandler)
	mux.Handle("/health", healthHandler)
	mux.Handle("/ready", readyHandler)
	mux.Handle("/health/providers", providerHealthHandler)

	if s.metrics != nil && s.config.Telemetry.Metrics.Enabled {
		mux.Handle(s.config.Telemetry.Metrics.Path, s.metrics.Handler())
	}

	// Apply middleware chain
	var handler http.Handler = mux

	// Timeout middleware
	handler = middleware.TimeoutMiddleware(s.config.Server.WriteTimeout)(handler)

	// CORS middleware
	corsConfig := s.convertCORSConfig()
	handler = middleware.CORSMiddleware(corsConfig)(handler)

	// Logging middleware
	handler = middleware.LoggingMiddleware(handler)

	// Request ID middleware
	handler = middleware.RequestIDMiddleware(handler)

	// Recovery middleware (outermost)
	handler = middleware.RecoveryMiddleware(handler)

	return handler
}

// limitBody caps the request body size for plan uploads.
func (s *Server) limitBody(next http.Handler) http.Handler {
	maxBytes := s.config.Server.MaxUploadBytes
	if maxBytes <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		next.ServeHTTP(w, r)
	})
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Handler returns the configured HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}

// convertCORSConfig converts config.CORSConfig to middleware.CORSConfig.
func (s *Server) convertCORSConfig() *middleware.CORSConfig {
	return &middleware.CORSConfig{
		Enabled:        s.config.Server.CORS.Enabled,
		AllowedOrigins: s.config.Server.CORS.AllowedOrigins,
		AllowedMethods: s.config.Server.CORS.AllowedMethods,
		AllowedHeaders: s.config.Server.CORS.AllowedHeaders,
		MaxAge:         s.config.Server.CORS.MaxAge,
	}
}

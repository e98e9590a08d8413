// Package server provides the HTTP server for the compliance screening
// service.
//
// This package ties together the handlers and middleware packages and
// provides server lifecycle management including start, shutdown, and
// OS signal handling (SIGTERM, SIGINT).
//
// # Basic Usage
//
// Creating and starting a server:
//
//	cfg := config.GetConfig()
//	store := checklist.NewStore(checklist.DefaultRegistry())
//	extractor := extract.New(cfg.Extraction.MaxPages, slog.Default())
//
//	srv := server.NewServer(cfg, store, extractor, manager, "openai", collector)
//	if err := srv.Start(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// # Routes
//
//   - GET  /                  landing page (HTML)
//   - POST /analyze           plan evaluation
//   - POST /chat              narrative Q&A
//   - GET  /health            liveness probe (always returns 200)
//   - GET  /ready             readiness probe (checklist loaded?)
//   - GET  /health/providers  detailed provider health
//   - GET  /metrics           Prometheus exposition (path configurable)
//
// # Middleware Chain
//
// Requests pass through the following middleware (innermost to outermost):
//  1. Timeout: Enforces per-request timeout
//  2. CORS: Adds Cross-Origin Resource Sharing headers
//  3. RequestID: Generates unique request ID for tracing
//  4. Logging: Logs request/response details
//  5. Recovery: Recovers from panics and returns 500 error
//
// # Graceful Shutdown
//
// The server shuts down gracefully when receiving SIGTERM or SIGINT, when
// the start context is cancelled, or when Shutdown is called:
//  1. Stops accepting new connections
//  2. Waits for active connections to complete (up to shutdown timeout)
//  3. Forces connection closure if timeout exceeded
//
// # Thread Safety
//
// All server operations are thread-safe and can be called concurrently
// from multiple goroutines.
package server

// Package middleware provides HTTP middleware for cross-cutting concerns.
//
// This package implements middleware functions that handle common
// functionality across all HTTP requests including request ID generation,
// logging, CORS, panic recovery, and timeout enforcement.
//
// # Middleware Chain
//
// Middleware functions are chained in a specific order:
//
//	handler = Recovery(RequestID(Logging(CORS(Timeout(handler)))))
//
// Order (innermost to outermost):
//  1. Timeout: Enforce per-request timeout
//  2. CORS: Add Cross-Origin Resource Sharing headers
//  3. Logging: Log request/response details
//  4. RequestID: Generate and propagate request ID
//  5. Recovery: Recover from panics
//
// # Request ID
//
// RequestIDMiddleware generates a unique ID for each request using UUID v4:
//
//	X-Request-ID: 550e8400-e29b-41d4-a716-446655440000
//
// The request ID is added to the context, included in response headers,
// and logged with all request/response logs.
//
// # Logging
//
// LoggingMiddleware uses structured logging (log/slog) to record request
// details: method, path, status, latency, request ID, remote address.
// Responses with 4xx status log at warn level, 5xx at error level.
//
// # Recovery
//
// RecoveryMiddleware catches panics in handlers and converts them to HTTP
// 500 errors with a generic message. The panic stack trace is logged but
// not exposed to clients.
//
// # Thread Safety
//
// All middleware functions are thread-safe and can be called concurrently
// from multiple goroutines.
package middleware

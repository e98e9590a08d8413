// Package openai implements the Provider interface for OpenAI's
// chat completions API.
//
// The adapter transforms provider-agnostic completion requests into
// OpenAI's wire format, sends them over the shared HTTP base with retry
// and health tracking, and transforms the responses back.
//
// Supported operations:
//   - Chat completions (POST /chat/completions)
//   - Health checks (GET /models)
//
// Authentication uses a Bearer token in the Authorization header.
package openai

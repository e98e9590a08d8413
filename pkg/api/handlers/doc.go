// Package handlers implements the HTTP handlers for the compliance
// screening service.
//
// Endpoints:
//   - GET  /                 landing page (HTML)
//   - POST /analyze          evaluate a base64-encoded PDF plan
//   - POST /chat             narrative Q&A about the building code
//   - GET  /health           liveness probe
//   - GET  /ready            readiness probe
//   - GET  /health/providers detailed provider health
//
// The analyze handler decodes the upload, extracts and normalizes the
// document text, and runs it through the rule evaluator. Input problems
// (missing payload, bad base64, unreadable PDF) return 400 with the error
// envelope before the evaluator is ever invoked.
//
// The chat handler forwards the question to a configured narrative
// provider wrapped in a building-compliance-engineer prompt. A provider
// failure degrades to an apologetic reply rather than an empty response.
package handlers

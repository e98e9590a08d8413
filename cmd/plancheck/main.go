// Plancheck is a compliance screening service for building plans.
//
// It evaluates uploaded plan documents (PDF) against the Dubai Building
// Code 2021 checklist and exposes the results over HTTP, providing:
//   - Deterministic keyword-based rule evaluation with pass-rate scoring
//   - Hot-reloadable YAML checklists
//   - An AI chat endpoint for narrative compliance questions
//   - Prometheus metrics and structured logging
//
// Usage:
//
//	# Start server with default configuration
//	plancheck run
//
//	# Start with custom configuration file
//	plancheck run --config /path/to/config.yaml
//
//	# Show version information
//	plancheck version
//
//	# Evaluate PDF files locally without a server
//	plancheck check --file plan.pdf
//
//	# Validate checklist files
//	plancheck lint --file checklists/dbc-2021.yaml
package main

func main() {
	Execute()
}

// Package metrics implements Prometheus metrics for the plancheck service.
//
// The Collector owns a private registry and groups metrics by concern:
// compliance evaluations (counts, pass-rate distribution, per-rule failure
// counts) and provider traffic (request counts and durations). The exposition
// endpoint is served by Handler.
package metrics

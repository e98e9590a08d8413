// Package providers defines the abstraction over external AI services used
// for the narrative compliance pathway: free-form questions about the
// building code and narrative plan reviews.
//
// The Provider interface is the only thing the rest of the service depends
// on. HTTPProvider is the shared base for HTTP-backed adapters and supplies
// connection pooling, retry with exponential backoff, typed errors, and
// health tracking with a consecutive-failure circuit breaker. Manager owns
// the configured providers and runs scheduled health probes.
//
// The deterministic rule evaluation engine never touches a provider; the
// two analysis pathways are composed by the request layer, not merged.
package providers

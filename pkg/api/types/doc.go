// Package types defines the JSON wire types shared by the HTTP handlers
// and middleware.
//
// All error conditions use a single envelope:
//
//	{"status": "error", "message": "human-readable description"}
//
// Successful responses carry endpoint-specific bodies; see the handlers
// package for those shapes.
package types

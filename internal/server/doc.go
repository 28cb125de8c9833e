// Package server runs the HTTP server of the search API.
//
// It owns the listener lifecycle: start-up, waiting for a stop signal and
// graceful shutdown bounded by the configured timeout.
package server

// Package http implements the HTTP transport layer of r2base applications.
//
// It builds the chi router every application is served by and provides the
// cross-cutting middleware in front of the controllers: request tracing,
// access logging, panic recovery, request timeouts, per-client rate
// limiting, Prometheus metrics, response compression and access-token
// authentication. Unmatched routes and unsupported methods end in the
// error stage of package response.
package http

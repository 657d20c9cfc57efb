// Package api implements the HTTP REST API server for SpecWave Core.
//
// This package provides:
//   - REST endpoints for looking up, resolving, and classifying device specs
//   - Registration and deletion of custom specs (persisted to SQLite)
//   - Discovery introspection (last report, manual re-run)
//   - JWT authentication on mutating routes
//   - Middleware stack (request ID, logging, recovery, CORS, body limit)
//
// # Architecture
//
// The API server is a consumer of the spec registry: all resolution and
// classification logic lives in the spec package, and handlers only
// translate between HTTP and registry calls. The registry itself performs
// no network I/O.
//
// # Security
//
// Read endpoints are open; endpoints that mutate the registry (register,
// delete, rediscover) require a JWT bearer token signed with the configured
// secret.
package api

// Package responder serves the demo API's fixed set of JSON endpoints.
//
// A Responder maps (path, GET) pairs to response builders. HEAD is served
// as GET:
//
//	GET /         - welcome message and endpoint directory
//	GET /api      - "Automate all the things!"
//	GET /test     - "tested"
//	GET /health   - liveness/readiness probe target
//	GET /metrics  - service, version, environment and bind address
//	GET /version  - version descriptor with build info
//
// Every body is JSON and carries the Unix second at which it was built.
// Anything else is answered with the NotFound body (404); a builder that
// fails or panics is answered with the InternalFault body (500).
//
// A Responder holds only immutable state and is safe for concurrent use.
package responder

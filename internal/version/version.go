// Package version holds the service identity reported by the API and the CLI.
package version

// ServiceName is the service identifier returned in response bodies.
const ServiceName = "liatrio-demo-api"

// Version is the release version of the service.
// It can be overridden at build time using:
//
//	go build -ldflags "-X github.com/liatrio/liatrio-demo-api/internal/version.Version=x.y.z"
var Version = "1.0.0"

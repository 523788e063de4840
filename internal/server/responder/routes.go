package responder

import (
	"time"

	"github.com/liatrio/liatrio-demo-api/internal/version"
)

// Fixed response strings
const (
	WelcomeMessage = "Welcome to the Liatrio Demo API!"
	APIMessage     = "Automate all the things!"
	TestMessage    = "tested"
	VersionMessage = "Semantic release testing endpoint"

	StatusHealthy   = "healthy"
	SemanticRelease = "enabled"
)

// builder produces the body for one route at the given instant.
type builder func(now time.Time) (any, error)

// endpointDirectory is the listing embedded in the welcome body. /test and
// /version are deliberately absent from it.
func endpointDirectory() map[string]string {
	return map[string]string{
		"/":        "Welcome endpoint",
		"/api":     "Main API endpoint",
		"/health":  "Health check endpoint",
		"/metrics": "Service metrics",
	}
}

func (r *Responder) buildRoutes() map[string]builder {
	return map[string]builder{
		"/":        r.rootBody,
		"/api":     r.apiBody,
		"/test":    r.testBody,
		"/health":  r.healthBody,
		"/metrics": r.metricsBody,
		"/version": r.versionBody,
	}
}

func (r *Responder) rootBody(now time.Time) (any, error) {
	return RootResponse{
		Message:   WelcomeMessage,
		Endpoints: endpointDirectory(),
		Timestamp: now.Unix(),
	}, nil
}

func (r *Responder) apiBody(now time.Time) (any, error) {
	return MessageResponse{Message: APIMessage, Timestamp: now.Unix()}, nil
}

func (r *Responder) testBody(now time.Time) (any, error) {
	return MessageResponse{Message: TestMessage, Timestamp: now.Unix()}, nil
}

func (r *Responder) healthBody(now time.Time) (any, error) {
	return HealthResponse{
		Status:    StatusHealthy,
		Service:   version.ServiceName,
		Timestamp: now.Unix(),
		Uptime:    isoformat(now.Local()),
	}, nil
}

func (r *Responder) metricsBody(now time.Time) (any, error) {
	return MetricsResponse{
		Service:     version.ServiceName,
		Version:     version.Version,
		Environment: r.cfg.Environment,
		Timestamp:   now.Unix(),
		Host:        r.cfg.Host,
		Port:        r.cfg.Port,
	}, nil
}

func (r *Responder) versionBody(now time.Time) (any, error) {
	return VersionResponse{
		Service:         version.ServiceName,
		Version:         version.Version,
		SemanticRelease: SemanticRelease,
		BuildInfo: BuildInfo{
			Timestamp:   now.Unix(),
			Environment: r.cfg.Environment,
		},
		Message: VersionMessage,
	}, nil
}

// isoformat renders t as YYYY-MM-DDTHH:MM:SS[.ffffff] without a zone,
// dropping the fraction only when it is zero at microsecond precision.
func isoformat(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format("2006-01-02T15:04:05")
	}
	return t.Format("2006-01-02T15:04:05.000000")
}

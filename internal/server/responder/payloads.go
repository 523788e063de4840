package responder

// RootResponse is the body of GET /.
type RootResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
	Timestamp int64             `json:"timestamp"`
}

// MessageResponse is the body of GET /api and GET /test.
type MessageResponse struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp int64  `json:"timestamp"`

	// Uptime is the current local wall-clock time in ISO-8601 form, not a
	// duration.
	Uptime string `json:"uptime"`
}

// MetricsResponse is the body of GET /metrics.
type MetricsResponse struct {
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Timestamp   int64  `json:"timestamp"`
	Host        string `json:"host"`
	Port        int    `json:"port"`
}

// VersionResponse is the body of GET /version.
type VersionResponse struct {
	Service         string    `json:"service"`
	Version         string    `json:"version"`
	SemanticRelease string    `json:"semantic_release"`
	BuildInfo       BuildInfo `json:"build_info"`
	Message         string    `json:"message"`
}

// BuildInfo is nested in VersionResponse.
type BuildInfo struct {
	Timestamp   int64  `json:"timestamp"`
	Environment string `json:"environment"`
}

// ErrorResponse is the body of both error kinds.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

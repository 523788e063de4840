// Package headers sets fixed response headers on every request through the
// go-supervisor headers middleware.
package headers

import (
	"errors"
	"net/http"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	supervisorHeaders "github.com/robbyt/go-supervisor/runnables/httpserver/middleware/headers"
)

// ErrNoHeaders is returned when there is nothing to set.
var ErrNoHeaders = errors.New("no response headers configured")

// ResponseHeaders sets the same headers on every response. Values are
// validated by the config layer before they get here.
type ResponseHeaders struct {
	headers    http.Header
	middleware httpserver.HandlerFunc
}

// New creates the middleware for the given header set.
func New(set map[string]string) (*ResponseHeaders, error) {
	if len(set) == 0 {
		return nil, ErrNoHeaders
	}

	h := make(http.Header, len(set))
	for name, value := range set {
		h.Set(name, value)
	}

	return &ResponseHeaders{
		headers:    h,
		middleware: supervisorHeaders.NewWithOperations(supervisorHeaders.WithSet(h)),
	}, nil
}

// Middleware returns the middleware function
func (rh *ResponseHeaders) Middleware() httpserver.HandlerFunc {
	return rh.middleware
}

// Len reports how many headers are set.
func (rh *ResponseHeaders) Len() int {
	return len(rh.headers)
}

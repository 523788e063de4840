package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/liatrio/liatrio-demo-api/internal/config"
	"github.com/liatrio/liatrio-demo-api/internal/testutil"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRoute(t *testing.T, path string) httpserver.Route {
	t.Helper()
	r, err := httpserver.NewRouteFromHandlerFunc("test-route", path, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	require.NoError(t, err)
	return *r
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("success with default options", func(t *testing.T) {
		t.Parallel()
		routes := []httpserver.Route{createTestRoute(t, "/")}

		server, err := New("api", "localhost:8080", routes, Timeouts{}, nil)
		require.NoError(t, err)
		assert.Equal(t, "api", server.GetID())
		assert.Equal(t, "localhost:8080", server.GetAddress())
		assert.Equal(t, "HTTPServer[api]", server.String())
	})

	t.Run("success with custom timeouts", func(t *testing.T) {
		t.Parallel()
		routes := []httpserver.Route{createTestRoute(t, "/")}
		timeouts := Timeouts{
			ReadTimeout:  20 * time.Second,
			WriteTimeout: 25 * time.Second,
			IdleTimeout:  70 * time.Second,
			DrainTimeout: 35 * time.Second,
		}

		server, err := New("api", "localhost:8080", routes, timeouts, slog.Default().WithGroup("test"))
		require.NoError(t, err)
		assert.Equal(t, timeouts, server.timeouts)
	})

	t.Run("no routes", func(t *testing.T) {
		t.Parallel()
		server, err := New("api", "localhost:8080", nil, Timeouts{}, nil)
		require.Error(t, err)
		assert.Nil(t, server)
	})
}

func TestTimeoutsFromConfig(t *testing.T) {
	t.Parallel()

	got := TimeoutsFromConfig(config.Defaults().HTTP)
	assert.Equal(t, Timeouts{
		ReadTimeout:  config.DefaultReadTimeout,
		WriteTimeout: config.DefaultWriteTimeout,
		IdleTimeout:  config.DefaultIdleTimeout,
		DrainTimeout: config.DefaultDrainTimeout,
	}, got)
}

func TestTimeouts_options(t *testing.T) {
	t.Parallel()

	// the server creator option is always present
	assert.Len(t, Timeouts{}.options(), 1)
	assert.Len(t, Timeouts{ReadTimeout: -time.Second}.options(), 1)
	assert.Len(t, Timeouts{ReadTimeout: time.Second, DrainTimeout: time.Second}.options(), 3)
	assert.Len(t, TimeoutsFromConfig(config.Defaults().HTTP).options(), 5)
}

func TestCreateServer(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()

	t.Run("single root route bypasses the mux", func(t *testing.T) {
		t.Parallel()
		cfg, err := httpserver.NewConfig("127.0.0.1:9090", []httpserver.Route{createTestRoute(t, "/")})
		require.NoError(t, err)

		srv, ok := createServer(cfg.ListenAddr, mux, cfg).(*http.Server)
		require.True(t, ok)
		assert.Equal(t, "127.0.0.1:9090", srv.Addr)
		assert.Same(t, &cfg.Routes[0], srv.Handler)
	})

	t.Run("other route sets keep the mux", func(t *testing.T) {
		t.Parallel()
		cfg, err := httpserver.NewConfig("127.0.0.1:9090", []httpserver.Route{
			createTestRoute(t, "/a"),
			createTestRoute(t, "/b"),
		})
		require.NoError(t, err)

		srv, ok := createServer(cfg.ListenAddr, mux, cfg).(*http.Server)
		require.True(t, ok)
		assert.Same(t, mux, srv.Handler)
	})
}

func TestHTTPServer_buildConfig(t *testing.T) {
	t.Parallel()
	routes := []httpserver.Route{createTestRoute(t, "/")}

	server, err := New("api", "127.0.0.1:9090", routes, Timeouts{ReadTimeout: 3 * time.Second}, nil)
	require.NoError(t, err)

	cfg, err := server.buildConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.ListenAddr)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
	assert.NotNil(t, cfg.ServerCreator)
	require.Len(t, cfg.Routes, 1)
	assert.Equal(t, "/", cfg.Routes[0].Path)
}

func TestHTTPServer_GetState(t *testing.T) {
	t.Parallel()

	server := &HTTPServer{id: "api"}
	assert.Equal(t, "unknown", server.GetState())
	assert.False(t, server.IsReady())

	server, err := New("api", "localhost:8080", []httpserver.Route{createTestRoute(t, "/")}, Timeouts{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "New", server.GetState())
	assert.False(t, server.IsReady())
}

func TestHTTPServer_GetStateChan(t *testing.T) {
	t.Parallel()

	server := &HTTPServer{id: "api"}
	ctx, cancel := context.WithCancel(context.Background())
	ch := server.GetStateChan(ctx)
	require.NotNil(t, ch)

	cancel()
	_, open := <-ch
	assert.False(t, open, "channel should close after context cancellation")
}

func TestHTTPServer_RunServesRoutes(t *testing.T) {
	t.Parallel()

	addr := testutil.GetRandomListenAddress(t)
	server, err := New("api", addr, []httpserver.Route{createTestRoute(t, "/")}, Timeouts{DrainTimeout: time.Second}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error, 1)
	go func() { errCh <- server.Run(ctx) }()

	require.Eventually(t, server.IsReady, 5*time.Second, 10*time.Millisecond)

	require.EventuallyWithT(t, func(c *assert.CollectT) {
		resp, err := http.Get("http://" + addr + "/")
		if !assert.NoError(c, err) {
			return
		}
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(c, http.StatusOK, resp.StatusCode)
	}, 5*time.Second, 20*time.Millisecond)

	// no mux redirect in front of the route
	noRedirect := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
	resp, err := noRedirect.Get("http://" + addr + "/x/../api")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

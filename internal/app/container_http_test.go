package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"freight-matching-platform/internal/config"
)

type httpServersIn struct {
	dig.In

	Main  *http.Server
	Pprof *http.Server `name:"pprof_server" optional:"true"`
}

func TestRegisterHTTP_PprofDisabled_ReturnsNilPprofServer(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Pprof = config.Pprof{Enabled: false, Addr: "0.0.0.0:6060"}

	c := setupTestContainer(t, cfg)
	err := c.Invoke(func(in httpServersIn) {
		require.NotNil(t, in.Main)
		require.Equal(t, ":8080", in.Main.Addr)
		require.Nil(t, in.Pprof)
	})
	require.NoError(t, err)
}

func TestRegisterHTTP_PprofEnabled_ProvidesPprofServer(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Pprof = config.Pprof{Enabled: true, Addr: "127.0.0.1:6060", User: "u", Pass: "p"}

	c := setupTestContainer(t, cfg)
	err := c.Invoke(func(in httpServersIn) {
		require.NotNil(t, in.Main)
		require.NotNil(t, in.Pprof)
		require.Equal(t, "127.0.0.1:6060", in.Pprof.Addr)
		require.NotNil(t, in.Pprof.Handler)
	})
	require.NoError(t, err)
}

func TestRegisterHTTP_RouterServesProbesAndMetrics(t *testing.T) {
	t.Parallel()

	c := setupTestContainer(t, testConfig())
	err := c.Invoke(func(mux http.Handler) {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		rr = httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
		require.Equal(t, http.StatusUnauthorized, rr.Code)

		rr = httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		require.Contains(t, rr.Body.String(), "http_requests_total")
	})
	require.NoError(t, err)
}

func TestProvideMetrics_RegistersServiceAndRuntimeCollectors(t *testing.T) {
	t.Parallel()

	out, err := provideMetrics()
	require.NoError(t, err)
	require.NotNil(t, out.Registry)
	require.NotNil(t, out.Registry.RateLimitExceeded)

	families, err := out.Gatherer.Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	require.True(t, names["rate_limit_exceeded_total"])
	require.True(t, names["auto_match_created_total"])
	require.True(t, names["go_goroutines"])

	// every call owns its registry, so repeated containers never collide
	again, err := provideMetrics()
	require.NoError(t, err)
	require.NotSame(t, out.Registry, again.Registry)

	err = out.Registerer.Register(prometheus.NewCounter(prometheus.CounterOpts{Name: "rate_limit_exceeded_total"}))
	require.Error(t, err)
}

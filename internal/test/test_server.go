package test

import (
	"testing"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/api/router"
	"github/uniagent/go-broker/internal/config"
)

// DefaultTestServerConfig returns the server config used by WithTestServer.
// The prometheus middleware is disabled as it registers collectors on the
// global registry, which collides across test server instances.
func DefaultTestServerConfig() config.Server {
	cfg := config.DefaultServiceConfigFromEnv()

	cfg.Echo.ListenAddress = ":0"
	cfg.Echo.EnablePrometheusMiddleware = false
	cfg.Logger.Level = "warn"
	cfg.Broker.PendingStore = "memory"
	cfg.Auth.APIKey = ""

	return cfg
}

// WithTestServer returns a fully configured server with the engine replaced
// by a mock (use WithTestServerConfigurable to customize both).
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()
	WithTestServerConfigurable(t, DefaultTestServerConfig(), NewEngineMock(), closure)
}

// WithTestServerFromEngine returns a fully configured server backed by the
// given engine mock.
func WithTestServerFromEngine(t *testing.T, engineMock *EngineMock, closure func(s *api.Server)) {
	t.Helper()
	WithTestServerConfigurable(t, DefaultTestServerConfig(), engineMock, closure)
}

// WithTestServerConfigurable returns a fully configured server, allowing for
// configuration using the provided server config.
func WithTestServerConfigurable(t *testing.T, cfg config.Server, engineMock *EngineMock, closure func(s *api.Server)) {
	t.Helper()

	s, err := api.InitNewServerWithEngine(cfg, engineMock, t)
	if err != nil {
		t.Fatalf("failed to init test server: %v", err)
	}

	router.Init(s)

	closure(s)
}

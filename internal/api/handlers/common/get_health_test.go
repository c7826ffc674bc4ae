package common_test

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/test"
	"github/uniagent/go-broker/internal/types"
)

func TestGetHealth(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/health", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.GetHealthResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, "ok", *response.Status)
		assert.NotZero(t, response.Timestamp)
	})
}

func TestGetHealthyRequiresSecret(t *testing.T) {
	cfg := test.DefaultTestServerConfig()
	cfg.Management.Secret = "mgmt-secret"

	test.WithTestServerConfigurable(t, cfg, test.NewEngineMock(), func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/healthy", nil, nil)
		require.Equal(t, http.StatusUnauthorized, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "GET", "/-/healthy?mgmt-secret=mgmt-secret", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		require.Equal(t, "OK.", res.Body.String())
	})
}

func TestGetHealthyEngineDown(t *testing.T) {
	cfg := test.DefaultTestServerConfig()
	cfg.Management.Secret = "mgmt-secret"

	engineMock := test.NewEngineMock()
	engineMock.PingErr = errors.New("connection refused")

	test.WithTestServerConfigurable(t, cfg, engineMock, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/healthy?mgmt-secret=mgmt-secret", nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)
		require.Equal(t, "Not healthy.", res.Body.String())
	})
}

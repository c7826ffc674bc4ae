package trade_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/test"
)

func TestTradeRoutesRequireAPIKey(t *testing.T) {
	cfg := test.DefaultTestServerConfig()
	cfg.Auth.APIKey = "secret-key"

	test.WithTestServerConfigurable(t, cfg, test.NewEngineMock(), func(s *api.Server) {
		payload := test.GenericPayload{
			"ownerAddress": testOwner,
			"chain":        "base",
			"token":        "native",
			"amountInUSD":  "25",
		}

		// no key
		res := test.PerformRequest(t, s, "POST", "/buy", payload, nil)
		require.Equal(t, http.StatusUnauthorized, res.Result().StatusCode)

		// wrong key
		headers := http.Header{}
		headers.Set("x-api-key", "wrong")
		res = test.PerformRequest(t, s, "POST", "/buy", payload, headers)
		require.Equal(t, http.StatusUnauthorized, res.Result().StatusCode)

		// key as header
		headers.Set("x-api-key", "secret-key")
		res = test.PerformRequest(t, s, "POST", "/buy", payload, headers)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		// key as query parameter
		res = test.PerformRequest(t, s, "POST", "/buy?apiKey=secret-key", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		// health stays public
		res = test.PerformRequest(t, s, "GET", "/health", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		// chains stays public
		res = test.PerformRequest(t, s, "GET", "/chains", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
	})
}

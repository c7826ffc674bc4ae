package trade_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/test"
	"github/uniagent/go-broker/internal/types"
)

func TestGetChains(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/chains", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.GetChainsResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.EqualValues(t, 1, response.Chains["eth"])
		assert.EqualValues(t, 1, response.Chains["ethereum"])
		assert.EqualValues(t, 8453, response.Chains["base"])
		assert.EqualValues(t, 42161, response.Chains["arbitrum"])
		assert.Equal(t, []string{"BNB", "BTC", "ETH", "SOL", "USDC", "USDT"}, response.PrimaryAssets)
	})
}

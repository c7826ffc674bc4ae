package trade_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/broker/engine"
	"github/uniagent/go-broker/internal/test"
	"github/uniagent/go-broker/internal/types"
)

func TestPostBalance(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{
			"ownerAddress": testOwner,
		}

		res := test.PerformRequest(t, s, "POST", "/balance", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.BalanceResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, testOwner, *response.OwnerAddress)
		assert.Equal(t, "100.00", response.TotalBalanceUSD)
		require.Len(t, response.Assets, 1)
		assert.Equal(t, "USDC", response.Assets[0].Symbol)
		require.Len(t, response.Assets[0].Chains, 1)
		assert.EqualValues(t, 8453, response.Assets[0].Chains[0].ChainID)
	})
}

func TestPostBalanceMissingOwner(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/balance", test.GenericPayload{}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}

func TestPostHistory(t *testing.T) {
	engineMock := test.NewEngineMock()
	engineMock.HistoryFunc = func(_ context.Context, _ string, page, pageSize int) (*engine.HistoryPage, error) {
		return &engine.HistoryPage{
			Page:     page,
			PageSize: pageSize,
			Items: []engine.HistoryItem{
				{TransactionID: "txid-42", Status: "success", CreatedAt: "2025-06-01T12:00:00Z"},
			},
		}, nil
	}

	test.WithTestServerFromEngine(t, engineMock, func(s *api.Server) {
		payload := test.GenericPayload{
			"ownerAddress": testOwner,
			"page":         2,
			"pageSize":     5,
		}

		res := test.PerformRequest(t, s, "POST", "/history", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.HistoryResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.EqualValues(t, 2, *response.Page)
		assert.EqualValues(t, 5, *response.PageSize)
		require.Len(t, response.Items, 1)
		assert.Equal(t, "txid-42", response.Items[0].TransactionID)
		assert.Equal(t, "https://universalx.app/activity/details?id=txid-42", response.Items[0].ExplorerURL)
	})
}

func TestPostHistoryDefaultsPagination(t *testing.T) {
	engineMock := test.NewEngineMock()

	test.WithTestServerFromEngine(t, engineMock, func(s *api.Server) {
		payload := test.GenericPayload{
			"ownerAddress": testOwner,
		}

		res := test.PerformRequest(t, s, "POST", "/history", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.HistoryResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.EqualValues(t, 1, *response.Page)
		assert.EqualValues(t, 10, *response.PageSize)
	})
}

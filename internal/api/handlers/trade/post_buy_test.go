package trade_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/api/httperrors"
	"github/uniagent/go-broker/internal/broker/engine"
	"github/uniagent/go-broker/internal/test"
	"github/uniagent/go-broker/internal/types"
)

const testOwner = "0x1111111111111111111111111111111111111111"

func TestPostBuySuccess(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{
			"ownerAddress": testOwner,
			"chain":        "base",
			"token":        "native",
			"amountInUSD":  "25",
		}

		res := test.PerformRequest(t, s, "POST", "/buy", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.CreateTransactionResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.NotEmpty(t, *response.RootHash)
		assert.EqualValues(t, 1, *response.Preview.Steps)
		assert.Equal(t, "0.42", response.Preview.TotalFeeUSD)
		assert.Contains(t, response.Message, "/submit")
	})
}

func TestPostBuyMissingFields(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{
			"chain": "base",
		}

		res := test.PerformRequest(t, s, "POST", "/buy", payload, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response httperrors.HTTPValidationError
		test.ParseResponseBody(t, res, &response)

		keys := make([]string, 0, len(response.ValidationErrors))
		for _, detail := range response.ValidationErrors {
			keys = append(keys, *detail.Key)
		}

		assert.Contains(t, keys, "ownerAddress")
		assert.Contains(t, keys, "token")
		assert.Contains(t, keys, "amountInUSD")
	})
}

func TestPostBuyUnknownChain(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{
			"ownerAddress": testOwner,
			"chain":        "marsnet",
			"token":        "native",
			"amountInUSD":  "25",
		}

		res := test.PerformRequest(t, s, "POST", "/buy", payload, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response httperrors.HTTPError
		test.ParseResponseBody(t, res, &response)
		assert.Equal(t, "Unknown chain: marsnet", *response.Title)
	})
}

func TestPostBuyEngineFailure(t *testing.T) {
	engineMock := test.NewEngineMock()
	engineMock.BuildFunc = func(_ context.Context, _ *engine.Intent) (*engine.UnsignedTransaction, error) {
		return nil, errors.New("Insufficient balance")
	}

	test.WithTestServerFromEngine(t, engineMock, func(s *api.Server) {
		payload := test.GenericPayload{
			"ownerAddress": testOwner,
			"chain":        "base",
			"token":        "native",
			"amountInUSD":  "25",
		}

		res := test.PerformRequest(t, s, "POST", "/buy", payload, nil)
		require.Equal(t, http.StatusInternalServerError, res.Result().StatusCode)

		var response httperrors.HTTPError
		test.ParseResponseBody(t, res, &response)
		assert.Equal(t, "Insufficient balance", *response.Title)
		assert.Equal(t, types.PublicHTTPErrorTypeBuildFailed, *response.Type)
	})
}

func TestPostConvertUnknownAsset(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{
			"ownerAddress": testOwner,
			"chain":        "eth",
			"asset":        "DOGE",
			"amount":       "5",
		}

		res := test.PerformRequest(t, s, "POST", "/convert", payload, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response httperrors.HTTPError
		test.ParseResponseBody(t, res, &response)
		assert.Equal(t, "Unknown asset: DOGE. Use: BNB, BTC, ETH, SOL, USDC, USDT", *response.Title)
	})
}

func TestPostTransferSuccess(t *testing.T) {
	engineMock := test.NewEngineMock()

	test.WithTestServerFromEngine(t, engineMock, func(s *api.Server) {
		payload := test.GenericPayload{
			"ownerAddress": testOwner,
			"chain":        "arbitrum",
			"token":        "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
			"amount":       "10",
			"receiver":     "0x2222222222222222222222222222222222222222",
		}

		res := test.PerformRequest(t, s, "POST", "/transfer", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		require.Len(t, engineMock.BuildCalls, 1)
		intent := engineMock.BuildCalls[0]
		assert.Equal(t, engine.OperationTransfer, intent.Operation)
		assert.Equal(t, "0x2222222222222222222222222222222222222222", intent.Receiver)
	})
}

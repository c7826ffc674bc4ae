package trade_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/api/httperrors"
	"github/uniagent/go-broker/internal/broker/engine"
	"github/uniagent/go-broker/internal/test"
	"github/uniagent/go-broker/internal/types"
)

func buildBuyTransaction(t *testing.T, s *api.Server) string {
	t.Helper()

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

	return *response.RootHash
}

func TestPostSubmitRoundTrip(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		rootHash := buildBuyTransaction(t, s)

		payload := test.GenericPayload{
			"rootHash":  rootHash,
			"signature": "0xsignature",
		}

		res := test.PerformRequest(t, s, "POST", "/submit", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.SubmitResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, "txid-1", *response.TransactionID)
		assert.Equal(t, "https://universalx.app/activity/details?id=txid-1", *response.ExplorerURL)
		require.NotNil(t, response.Fees)
		assert.Equal(t, "0.42", response.Fees.TotalUSD)
	})
}

func TestPostSubmitReplayRejected(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		rootHash := buildBuyTransaction(t, s)

		payload := test.GenericPayload{
			"rootHash":  rootHash,
			"signature": "0xsignature",
		}

		res := test.PerformRequest(t, s, "POST", "/submit", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "POST", "/submit", payload, nil)
		require.Equal(t, http.StatusNotFound, res.Result().StatusCode)

		var response httperrors.HTTPError
		test.ParseResponseBody(t, res, &response)
		assert.Equal(t, "Transaction not found or expired. Create a new one.", *response.Title)
	})
}

func TestPostSubmitExpired(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		rootHash := buildBuyTransaction(t, s)

		clock, ok := s.Clock.(*time2.MockClock)
		require.True(t, ok)
		clock.Advance(s.Config.Broker.PendingTTL + time.Second)

		payload := test.GenericPayload{
			"rootHash":  rootHash,
			"signature": "0xsignature",
		}

		res := test.PerformRequest(t, s, "POST", "/submit", payload, nil)
		require.Equal(t, http.StatusNotFound, res.Result().StatusCode)

		var response httperrors.HTTPError
		test.ParseResponseBody(t, res, &response)
		assert.Equal(t, "Transaction not found or expired. Create a new one.", *response.Title)
	})
}

func TestPostSubmitUnknownRootHash(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{
			"rootHash":  "0xdeadbeef",
			"signature": "0xsignature",
		}

		res := test.PerformRequest(t, s, "POST", "/submit", payload, nil)
		require.Equal(t, http.StatusNotFound, res.Result().StatusCode)

		var response httperrors.HTTPError
		test.ParseResponseBody(t, res, &response)
		assert.Equal(t, "Transaction not found or expired. Create a new one.", *response.Title)
		assert.Equal(t, types.PublicHTTPErrorTypeTransactionNotFound, *response.Type)
	})
}

func TestPostSubmitMissingFields(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/submit", test.GenericPayload{}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}

func TestPostSubmitEngineRejection(t *testing.T) {
	engineMock := test.NewEngineMock()
	engineMock.SubmitFunc = func(_ context.Context, _ *engine.UnsignedTransaction, _ string) (*engine.Receipt, error) {
		return nil, errors.New("Invalid signature")
	}

	test.WithTestServerFromEngine(t, engineMock, func(s *api.Server) {
		rootHash := buildBuyTransaction(t, s)

		payload := test.GenericPayload{
			"rootHash":  rootHash,
			"signature": "0xbadsignature",
		}

		res := test.PerformRequest(t, s, "POST", "/submit", payload, nil)
		require.Equal(t, http.StatusInternalServerError, res.Result().StatusCode)

		var response httperrors.HTTPError
		test.ParseResponseBody(t, res, &response)
		assert.Equal(t, "Invalid signature", *response.Title)
		assert.Equal(t, types.PublicHTTPErrorTypeSubmissionFailed, *response.Type)

		// the failed submission consumed the entry
		res = test.PerformRequest(t, s, "POST", "/submit", payload, nil)
		require.Equal(t, http.StatusNotFound, res.Result().StatusCode)
	})
}

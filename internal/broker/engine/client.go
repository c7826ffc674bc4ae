package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/big"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github/uniagent/go-broker/internal/config"
)

// The engine speaks a small JSON protocol:
//
//	POST /universal/transactions        build an unsigned transaction
//	POST /universal/transactions/submit submit a signed transaction
//	POST /universal/accounts/assets     unified balance of an owner
//	POST /universal/transactions/list   transaction history page
//	GET  /health                        reachability probe
//
// Credentials identify this deployment towards the engine and are sent as
// headers on every call. They are never exposed to end users.
const (
	pathBuild   = "/universal/transactions"
	pathSubmit  = "/universal/transactions/submit"
	pathAssets  = "/universal/accounts/assets"
	pathHistory = "/universal/transactions/list"
	pathHealth  = "/health"
)

// feeDecimals is the fixed-point scale of all USD fee amounts on the wire.
const feeDecimals = 18

type client struct {
	http    *http.Client
	baseURL string
	cfg     config.EngineServer
}

// NewClient 创建执行引擎客户端
//
//nolint:ireturn
func NewClient(cfg config.EngineServer) (Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("engine base URL is not configured")
	}

	return &client{
		http:    &http.Client{Timeout: cfg.ClientTimeout},
		baseURL: cfg.BaseURL,
		cfg:     cfg,
	}, nil
}

type tokenRef struct {
	ChainID int64  `json:"chainId"`
	Address string `json:"address"`
}

type expectTokenRef struct {
	Type   string `json:"type"`
	Amount string `json:"amount"`
}

type tradeConfig struct {
	SlippageBps  int  `json:"slippageBps"`
	UniversalGas bool `json:"universalGas"`
}

type buildRequest struct {
	RequestID    string          `json:"requestId"`
	Operation    string          `json:"operation"`
	OwnerAddress string          `json:"ownerAddress"`
	Token        *tokenRef       `json:"token,omitempty"`
	ExpectToken  *expectTokenRef `json:"expectToken,omitempty"`
	ChainID      int64           `json:"chainId,omitempty"`
	AmountInUSD  string          `json:"amountInUSD,omitempty"`
	Amount       string          `json:"amount,omitempty"`
	Receiver     string          `json:"receiver,omitempty"`
	TradeConfig  tradeConfig     `json:"tradeConfig"`
}

type feeTotals struct {
	FeeTokenAmountInUSD                   string `json:"feeTokenAmountInUSD"`
	GasFeeTokenAmountInUSD                string `json:"gasFeeTokenAmountInUSD"`
	TransactionServiceFeeTokenAmountInUSD string `json:"transactionServiceFeeTokenAmountInUSD"`
	TransactionLPFeeTokenAmountInUSD      string `json:"transactionLPFeeTokenAmountInUSD"`
}

type feeQuote struct {
	Fees struct {
		Totals *feeTotals `json:"totals"`
	} `json:"fees"`
}

type buildResponse struct {
	RootHash  string            `json:"rootHash"`
	UserOps   []json.RawMessage `json:"userOps"`
	FeeQuotes []feeQuote        `json:"feeQuotes"`
	SessionID string            `json:"sessionId"`
	Context   json.RawMessage   `json:"context"`
}

type submitRequest struct {
	RequestID string          `json:"requestId"`
	SessionID string          `json:"sessionId"`
	RootHash  string          `json:"rootHash"`
	Signature string          `json:"signature"`
	Context   json.RawMessage `json:"context,omitempty"`
}

type submitResponse struct {
	TransactionID string `json:"transactionId"`
	Fees          *struct {
		Totals *feeTotals `json:"totals"`
	} `json:"fees"`
}

type ownerRequest struct {
	OwnerAddress string `json:"ownerAddress"`
}

type historyRequest struct {
	OwnerAddress string `json:"ownerAddress"`
	Page         int    `json:"page"`
	PageSize     int    `json:"pageSize"`
}

func (c *client) BuildTransaction(ctx context.Context, intent *Intent) (*UnsignedTransaction, error) {
	req := buildRequest{
		RequestID:    uuid.NewString(),
		Operation:    string(intent.Operation),
		OwnerAddress: intent.OwnerAddress,
		TradeConfig: tradeConfig{
			SlippageBps:  intent.SlippageBps,
			UniversalGas: true,
		},
	}

	switch intent.Operation {
	case OperationBuy:
		req.Token = &tokenRef{ChainID: int64(intent.ChainID), Address: intent.TokenAddress}
		req.AmountInUSD = intent.Amount
	case OperationConvert:
		req.ExpectToken = &expectTokenRef{Type: string(intent.Asset), Amount: intent.Amount}
		req.ChainID = int64(intent.ChainID)
	case OperationSell, OperationTransfer:
		req.Token = &tokenRef{ChainID: int64(intent.ChainID), Address: intent.TokenAddress}
		req.Amount = intent.Amount
		req.Receiver = intent.Receiver
	default:
		return nil, errors.Errorf("unsupported operation: %s", intent.Operation)
	}

	var res buildResponse
	if err := c.post(ctx, pathBuild, req, &res); err != nil {
		return nil, err
	}

	if res.RootHash == "" {
		return nil, errors.New("engine returned transaction without root hash")
	}

	txn := &UnsignedTransaction{
		RootHash: res.RootHash,
		Steps:    len(res.UserOps),
		Session: SessionContext{
			SessionID:    res.SessionID,
			OwnerAddress: intent.OwnerAddress,
			Payload:      res.Context,
		},
	}

	if len(res.FeeQuotes) > 0 && res.FeeQuotes[0].Fees.Totals != nil {
		fees, err := convertFeeTotals(res.FeeQuotes[0].Fees.Totals)
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert fee quote")
		}
		txn.Fees = fees
	}

	return txn, nil
}

func (c *client) SubmitTransaction(ctx context.Context, txn *UnsignedTransaction, signature string) (*Receipt, error) {
	req := submitRequest{
		RequestID: uuid.NewString(),
		SessionID: txn.Session.SessionID,
		RootHash:  txn.RootHash,
		Signature: signature,
		Context:   txn.Session.Payload,
	}

	var res submitResponse
	if err := c.post(ctx, pathSubmit, req, &res); err != nil {
		return nil, err
	}

	if res.TransactionID == "" {
		return nil, errors.New("engine accepted submission without transaction id")
	}

	receipt := &Receipt{TransactionID: res.TransactionID}

	if res.Fees != nil && res.Fees.Totals != nil {
		totalUSD, err := parseFeeUSD(res.Fees.Totals.FeeTokenAmountInUSD)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse total fee")
		}

		gasUSD, err := parseFeeUSD(res.Fees.Totals.GasFeeTokenAmountInUSD)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse gas fee")
		}

		receipt.Fees = &ExecutionFees{TotalUSD: totalUSD, GasUSD: gasUSD}
	}

	return receipt, nil
}

func (c *client) GetBalance(ctx context.Context, ownerAddress string) (*BalanceSummary, error) {
	var res BalanceSummary
	if err := c.post(ctx, pathAssets, ownerRequest{OwnerAddress: ownerAddress}, &res); err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *client) GetHistory(ctx context.Context, ownerAddress string, page, pageSize int) (*HistoryPage, error) {
	var res HistoryPage
	if err := c.post(ctx, pathHistory, historyRequest{OwnerAddress: ownerAddress, Page: page, PageSize: pageSize}, &res); err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathHealth, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create engine health request")
	}
	c.setHeaders(req)

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "engine is unreachable")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return errors.Errorf("engine health check returned status %d", res.StatusCode)
	}

	return nil
}

// engineError is the engine's error envelope. Either field may carry the
// human-readable cause.
type engineError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to marshal engine request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to create engine request")
	}
	c.setHeaders(req)

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "engine request failed")
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read engine response")
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		var engineErr engineError
		if err := json.Unmarshal(raw, &engineErr); err == nil {
			if engineErr.Error != "" {
				return errors.New(engineErr.Error)
			}
			if engineErr.Message != "" {
				return errors.New(engineErr.Message)
			}
		}

		log.Debug().Int("status", res.StatusCode).Str("path", path).Msg("Engine returned unexpected error payload")

		return errors.Errorf("engine returned status %d", res.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "failed to decode engine response")
	}

	return nil
}

func (c *client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-request-id", uuid.NewString())
	req.Header.Set("x-project-id", c.cfg.ProjectID)
	req.Header.Set("x-client-key", c.cfg.ClientKey)
	req.Header.Set("x-app-id", c.cfg.AppID)
}

func convertFeeTotals(totals *feeTotals) (*FeeQuote, error) {
	total, err := parseFeeUSD(totals.FeeTokenAmountInUSD)
	if err != nil {
		return nil, err
	}

	gas, err := parseFeeUSD(totals.GasFeeTokenAmountInUSD)
	if err != nil {
		return nil, err
	}

	service, err := parseFeeUSD(totals.TransactionServiceFeeTokenAmountInUSD)
	if err != nil {
		return nil, err
	}

	lp, err := parseFeeUSD(totals.TransactionLPFeeTokenAmountInUSD)
	if err != nil {
		return nil, err
	}

	return &FeeQuote{
		TotalUSD:             total,
		GasUSD:               gas,
		ServiceUSD:           service,
		LiquidityProviderUSD: lp,
	}, nil
}

// parseFeeUSD converts a 1e18 fixed-point integer string into a USD decimal.
// Empty input is treated as zero, some engine responses omit individual fees.
func parseFeeUSD(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}

	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return decimal.Zero, errors.Errorf("invalid fee amount: %q", raw)
	}

	return decimal.NewFromBigInt(v, -feeDecimals), nil
}

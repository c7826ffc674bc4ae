package test

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github/uniagent/go-broker/internal/broker/engine"
)

// EngineMock is a programmable engine.Client for service and handler tests.
// Without overrides it behaves like a healthy engine returning deterministic
// unsigned transactions and receipts.
type EngineMock struct {
	mu sync.Mutex

	BuildFunc   func(ctx context.Context, intent *engine.Intent) (*engine.UnsignedTransaction, error)
	SubmitFunc  func(ctx context.Context, txn *engine.UnsignedTransaction, signature string) (*engine.Receipt, error)
	BalanceFunc func(ctx context.Context, ownerAddress string) (*engine.BalanceSummary, error)
	HistoryFunc func(ctx context.Context, ownerAddress string, page, pageSize int) (*engine.HistoryPage, error)
	PingErr     error

	// call records, guarded by mu
	BuildCalls  []*engine.Intent
	SubmitCalls []*engine.UnsignedTransaction
}

func NewEngineMock() *EngineMock {
	return &EngineMock{}
}

func (m *EngineMock) BuildTransaction(ctx context.Context, intent *engine.Intent) (*engine.UnsignedTransaction, error) {
	m.mu.Lock()
	m.BuildCalls = append(m.BuildCalls, intent)
	n := len(m.BuildCalls)
	m.mu.Unlock()

	if m.BuildFunc != nil {
		return m.BuildFunc(ctx, intent)
	}

	return &engine.UnsignedTransaction{
		RootHash: fmt.Sprintf("0x%064x", n),
		Steps:    1,
		Fees: &engine.FeeQuote{
			TotalUSD:             decimal.RequireFromString("0.42"),
			GasUSD:               decimal.RequireFromString("0.1"),
			ServiceUSD:           decimal.RequireFromString("0.02"),
			LiquidityProviderUSD: decimal.RequireFromString("0.3"),
		},
		Session: engine.SessionContext{
			SessionID:    fmt.Sprintf("session-%d", n),
			OwnerAddress: intent.OwnerAddress,
		},
	}, nil
}

func (m *EngineMock) SubmitTransaction(ctx context.Context, txn *engine.UnsignedTransaction, signature string) (*engine.Receipt, error) {
	m.mu.Lock()
	m.SubmitCalls = append(m.SubmitCalls, txn)
	n := len(m.SubmitCalls)
	m.mu.Unlock()

	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, txn, signature)
	}

	return &engine.Receipt{
		TransactionID: fmt.Sprintf("txid-%d", n),
		Fees: &engine.ExecutionFees{
			TotalUSD: decimal.RequireFromString("0.42"),
			GasUSD:   decimal.RequireFromString("0.1"),
		},
	}, nil
}

func (m *EngineMock) GetBalance(ctx context.Context, ownerAddress string) (*engine.BalanceSummary, error) {
	if m.BalanceFunc != nil {
		return m.BalanceFunc(ctx, ownerAddress)
	}

	return &engine.BalanceSummary{
		OwnerAddress: ownerAddress,
		TotalUSD:     "100.00",
		Assets: []engine.BalanceAsset{
			{
				Symbol:           "USDC",
				Name:             "USD Coin",
				TotalAmount:      "100",
				TotalAmountInUSD: "100.00",
				Chains: []engine.BalanceChainAmount{
					{ChainName: "base", ChainID: 8453, Amount: "100"},
				},
			},
		},
	}, nil
}

func (m *EngineMock) GetHistory(ctx context.Context, ownerAddress string, page, pageSize int) (*engine.HistoryPage, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, ownerAddress, page, pageSize)
	}

	return &engine.HistoryPage{
		Page:     page,
		PageSize: pageSize,
		Items: []engine.HistoryItem{
			{TransactionID: "txid-1", Status: "success", CreatedAt: "2025-01-01T00:00:00Z"},
		},
	}, nil
}

func (m *EngineMock) Ping(_ context.Context) error {
	return m.PingErr
}

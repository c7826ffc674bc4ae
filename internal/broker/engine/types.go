package engine

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github/uniagent/go-broker/internal/broker/chain"
)

// OperationKind is the kind of cross-chain operation an intent describes.
type OperationKind string

const (
	OperationBuy      OperationKind = "buy"
	OperationSell     OperationKind = "sell"
	OperationConvert  OperationKind = "convert"
	OperationTransfer OperationKind = "transfer"
)

// Intent is a fully resolved, normalized request for the engine. Amount is
// USD-denominated for buy and asset-denominated for everything else.
type Intent struct {
	Operation    OperationKind
	OwnerAddress string
	ChainID      chain.ID
	TokenAddress string          // buy/sell/transfer
	Asset        chain.AssetType // convert only
	Amount       string
	Receiver     string // transfer only
	SlippageBps  int
}

// FeeQuote is the USD fee breakdown of an unsigned transaction, converted
// from the engine's 1e18 fixed-point representation.
type FeeQuote struct {
	TotalUSD             decimal.Decimal `json:"totalUSD"`
	GasUSD               decimal.Decimal `json:"gasUSD"`
	ServiceUSD           decimal.Decimal `json:"serviceUSD"`
	LiquidityProviderUSD decimal.Decimal `json:"liquidityProviderUSD"`
}

// SessionContext is the opaque execution context required to submit a built
// transaction later. It is held alongside the unsigned transaction in the
// pending store and never exposed to the caller.
type SessionContext struct {
	SessionID    string          `json:"sessionId"`
	OwnerAddress string          `json:"ownerAddress"`
	Payload      json.RawMessage `json:"payload,omitempty"`
}

// UnsignedTransaction is the artifact produced by BuildTransaction. RootHash
// is the content-derived identifier the user signs; it is treated as an
// opaque string throughout the broker.
type UnsignedTransaction struct {
	RootHash string         `json:"rootHash"`
	Steps    int            `json:"steps"`
	Fees     *FeeQuote      `json:"fees,omitempty"`
	Session  SessionContext `json:"session"`
}

// ExecutionFees is the fee breakdown reported after execution.
type ExecutionFees struct {
	TotalUSD decimal.Decimal `json:"totalUSD"`
	GasUSD   decimal.Decimal `json:"gasUSD"`
}

// Receipt confirms an accepted submission.
type Receipt struct {
	TransactionID string         `json:"transactionId"`
	Fees          *ExecutionFees `json:"fees,omitempty"`
}

// BalanceChainAmount is one chain slice of an aggregated position.
type BalanceChainAmount struct {
	ChainName string `json:"chain"`
	ChainID   int64  `json:"chainId"`
	Amount    string `json:"amount"`
}

// BalanceAsset is an aggregated asset position across chains. Amounts are
// passed through as the engine reports them.
type BalanceAsset struct {
	Symbol           string               `json:"symbol"`
	Name             string               `json:"name"`
	TotalAmount      string               `json:"totalAmount"`
	TotalAmountInUSD string               `json:"totalAmountInUSD"`
	Chains           []BalanceChainAmount `json:"chains"`
}

// BalanceSummary is the unified account view of an owner address.
type BalanceSummary struct {
	OwnerAddress  string         `json:"ownerAddress"`
	EvmAddress    string         `json:"evmAddress,omitempty"`
	SolanaAddress string         `json:"solanaAddress,omitempty"`
	TotalUSD      string         `json:"totalBalanceUSD"`
	Assets        []BalanceAsset `json:"assets"`
}

// HistoryItem is one executed transaction of an owner address.
type HistoryItem struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// HistoryPage is a page of transaction history.
type HistoryPage struct {
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
	Items    []HistoryItem `json:"items"`
}

// Client is the boundary to the external execution engine. Errors are
// returned verbatim with the engine's human-readable cause, no retry policy
// is applied at this layer.
type Client interface {
	// BuildTransaction produces an unsigned transaction for the intent.
	BuildTransaction(ctx context.Context, intent *Intent) (*UnsignedTransaction, error)

	// SubmitTransaction forwards the signed transaction for execution.
	SubmitTransaction(ctx context.Context, txn *UnsignedTransaction, signature string) (*Receipt, error)

	// GetBalance fetches the unified balance of an owner address.
	GetBalance(ctx context.Context, ownerAddress string) (*BalanceSummary, error)

	// GetHistory fetches a page of transaction history of an owner address.
	GetHistory(ctx context.Context, ownerAddress string, page, pageSize int) (*HistoryPage, error)

	// Ping probes engine reachability, used by readiness checks.
	Ping(ctx context.Context) error
}

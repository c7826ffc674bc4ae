package broker

import (
	"context"

	"github/uniagent/go-broker/internal/broker/chain"
	"github/uniagent/go-broker/internal/broker/engine"
)

// CreateRequest is an unresolved trade request as received on the wire.
// Chain, Token and Asset are human-readable identifiers; resolution happens
// inside the service. Amount is USD-denominated for buy only.
type CreateRequest struct {
	Operation    engine.OperationKind
	OwnerAddress string
	Chain        string
	Token        string // buy/sell/transfer
	Asset        string // convert
	Amount       string
	Receiver     string // transfer
	SlippageBps  int
}

// CreateResult is the preview handed back to the caller. The unsigned
// transaction itself stays server-side under its root hash.
type CreateResult struct {
	RootHash string
	Steps    int
	Fees     *engine.FeeQuote
}

// SubmitResult is the receipt of a confirmed submission. It is ephemeral,
// the broker does not store it.
type SubmitResult struct {
	TransactionID string
	ExplorerURL   string
	Fees          *engine.ExecutionFees
}

// Service 定义交易 broker 服务接口
//
// The two-phase protocol: CreateTransaction builds an unsigned transaction
// and parks it under its root hash; Submit claims the parked entry exactly
// once and forwards it with the externally produced signature. A failed
// submission is terminal, the entry is not restored (the execution plan may
// be stale and must be rebuilt from a fresh intent).
type Service interface {
	CreateTransaction(ctx context.Context, req *CreateRequest) (*CreateResult, error)

	Submit(ctx context.Context, rootHash string, signature string) (*SubmitResult, error)

	Balance(ctx context.Context, ownerAddress string) (*engine.BalanceSummary, error)

	History(ctx context.Context, ownerAddress string, page, pageSize int) (*engine.HistoryPage, error)

	// SupportedChains returns the resolver's alias map and primary assets for
	// the informational /chains endpoint.
	SupportedChains() (map[string]chain.ID, []string)
}

// InputError marks a request as invalid before any external call was made.
// Handlers map it to a 400 response.
type InputError struct {
	cause error
}

func NewInputError(cause error) *InputError {
	return &InputError{cause: cause}
}

func (e *InputError) Error() string {
	return e.cause.Error()
}

func (e *InputError) Unwrap() error {
	return e.cause
}

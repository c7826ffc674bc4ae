package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// TransactionPreview summarizes an unsigned transaction for the caller:
// the number of execution steps plus the fee quote in USD decimal strings.
// Fee fields are omitted when the engine returned no quote.
type TransactionPreview struct {
	// Required: true
	Steps         *int64 `json:"steps"`
	TotalFeeUSD   string `json:"totalFeeUSD,omitempty"`
	GasFeeUSD     string `json:"gasFeeUSD,omitempty"`
	ServiceFeeUSD string `json:"serviceFeeUSD,omitempty"`
	LpFeeUSD      string `json:"lpFeeUSD,omitempty"`
}

func (m *TransactionPreview) Validate(_ strfmt.Registry) error {
	return validate.Required("steps", "body", m.Steps)
}

// CreateTransactionResponse is returned by POST /buy, /sell, /convert and
// /transfer. The root hash is the value the caller must sign and return to
// POST /submit within the pending TTL.
type CreateTransactionResponse struct {
	// Required: true
	RootHash *string `json:"rootHash"`
	// Required: true
	Preview *TransactionPreview `json:"preview"`
	Message string              `json:"message,omitempty"`
}

func (m *CreateTransactionResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("rootHash", "body", m.RootHash); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("preview", "body", m.Preview); err != nil {
		res = append(res, err)
	} else if err := m.Preview.Validate(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// SubmitFees is the fee breakdown of an executed transaction.
type SubmitFees struct {
	TotalUSD string `json:"totalUSD,omitempty"`
	GasUSD   string `json:"gasUSD,omitempty"`
}

func (m *SubmitFees) Validate(_ strfmt.Registry) error {
	return nil
}

// SubmitResponse is the receipt returned by POST /submit.
type SubmitResponse struct {
	// Required: true
	TransactionID *string `json:"transactionId"`
	// Required: true
	ExplorerURL *string     `json:"explorerUrl"`
	Fees        *SubmitFees `json:"fees,omitempty"`
}

func (m *SubmitResponse) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("transactionId", "body", m.TransactionID); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("explorerUrl", "body", m.ExplorerURL); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// BalanceChainAmount is the per-chain slice of an aggregated asset position.
type BalanceChainAmount struct {
	Chain   string `json:"chain,omitempty"`
	ChainID int64  `json:"chainId,omitempty"`
	Amount  string `json:"amount,omitempty"`
}

func (m *BalanceChainAmount) Validate(_ strfmt.Registry) error {
	return nil
}

// BalanceAsset is one aggregated asset position across chains.
type BalanceAsset struct {
	Symbol           string                `json:"symbol,omitempty"`
	Name             string                `json:"name,omitempty"`
	TotalAmount      string                `json:"totalAmount,omitempty"`
	TotalAmountInUSD string                `json:"totalAmountInUSD,omitempty"`
	Chains           []*BalanceChainAmount `json:"chains"`
}

func (m *BalanceAsset) Validate(_ strfmt.Registry) error {
	return nil
}

// BalanceResponse is returned by POST /balance.
type BalanceResponse struct {
	// Required: true
	OwnerAddress    *string         `json:"ownerAddress"`
	EvmAddress      string          `json:"evmAddress,omitempty"`
	SolanaAddress   string          `json:"solanaAddress,omitempty"`
	TotalBalanceUSD string          `json:"totalBalanceUSD,omitempty"`
	Assets          []*BalanceAsset `json:"assets"`
}

func (m *BalanceResponse) Validate(_ strfmt.Registry) error {
	return validate.Required("ownerAddress", "body", m.OwnerAddress)
}

// HistoryItem is one executed transaction in the history page.
type HistoryItem struct {
	TransactionID string `json:"transactionId,omitempty"`
	Status        string `json:"status,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	ExplorerURL   string `json:"explorerUrl,omitempty"`
}

func (m *HistoryItem) Validate(_ strfmt.Registry) error {
	return nil
}

// HistoryResponse is returned by POST /history.
type HistoryResponse struct {
	// Required: true
	Page *int64 `json:"page"`
	// Required: true
	PageSize *int64         `json:"pageSize"`
	Items    []*HistoryItem `json:"items"`
}

func (m *HistoryResponse) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("page", "body", m.Page); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("pageSize", "body", m.PageSize); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// GetChainsResponse lists the supported chain aliases with their canonical
// chain ids plus the primary asset symbols usable with POST /convert.
type GetChainsResponse struct {
	// Required: true
	Chains        map[string]int64 `json:"chains"`
	PrimaryAssets []string         `json:"primaryAssets"`
}

func (m *GetChainsResponse) Validate(_ strfmt.Registry) error {
	return validate.Required("chains", "body", m.Chains)
}

// GetHealthResponse is returned by the public GET /health endpoint.
type GetHealthResponse struct {
	// Required: true
	Status    *string `json:"status"`
	Service   string  `json:"service,omitempty"`
	Timestamp int64   `json:"timestamp,omitempty"`
}

func (m *GetHealthResponse) Validate(_ strfmt.Registry) error {
	return validate.Required("status", "body", m.Status)
}

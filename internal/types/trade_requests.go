package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PostBuyPayload is the request body of POST /buy.
// AmountInUSD is USD-denominated, all other operations take asset amounts.
type PostBuyPayload struct {
	// Required: true
	OwnerAddress *string `json:"ownerAddress"`
	// Required: true
	Chain *string `json:"chain"`
	// token address on the target chain, or "native"
	// Required: true
	Token *string `json:"token"`
	// Required: true
	AmountInUSD *string `json:"amountInUSD"`
	SlippageBps int64   `json:"slippageBps,omitempty"`
}

func (m *PostBuyPayload) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("ownerAddress", "body", m.OwnerAddress); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("chain", "body", m.Chain); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("token", "body", m.Token); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("amountInUSD", "body", m.AmountInUSD); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// PostSellPayload is the request body of POST /sell.
type PostSellPayload struct {
	// Required: true
	OwnerAddress *string `json:"ownerAddress"`
	// Required: true
	Chain *string `json:"chain"`
	// Required: true
	Token *string `json:"token"`
	// amount denominated in the token being sold
	// Required: true
	Amount      *string `json:"amount"`
	SlippageBps int64   `json:"slippageBps,omitempty"`
}

func (m *PostSellPayload) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("ownerAddress", "body", m.OwnerAddress); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("chain", "body", m.Chain); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("token", "body", m.Token); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("amount", "body", m.Amount); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// PostConvertPayload is the request body of POST /convert. Asset must be one
// of the primary settlement assets.
type PostConvertPayload struct {
	// Required: true
	OwnerAddress *string `json:"ownerAddress"`
	// Required: true
	Chain *string `json:"chain"`
	// Required: true
	Asset *string `json:"asset"`
	// Required: true
	Amount      *string `json:"amount"`
	SlippageBps int64   `json:"slippageBps,omitempty"`
}

func (m *PostConvertPayload) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("ownerAddress", "body", m.OwnerAddress); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("chain", "body", m.Chain); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("asset", "body", m.Asset); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("amount", "body", m.Amount); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// PostTransferPayload is the request body of POST /transfer.
type PostTransferPayload struct {
	// Required: true
	OwnerAddress *string `json:"ownerAddress"`
	// Required: true
	Chain *string `json:"chain"`
	// Required: true
	Token *string `json:"token"`
	// Required: true
	Amount *string `json:"amount"`
	// Required: true
	Receiver    *string `json:"receiver"`
	SlippageBps int64   `json:"slippageBps,omitempty"`
}

func (m *PostTransferPayload) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("ownerAddress", "body", m.OwnerAddress); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("chain", "body", m.Chain); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("token", "body", m.Token); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("amount", "body", m.Amount); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("receiver", "body", m.Receiver); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// PostSubmitPayload is the request body of POST /submit. The signature is an
// opaque string produced by the client-side signer over the root hash bytes.
type PostSubmitPayload struct {
	// Required: true
	RootHash *string `json:"rootHash"`
	// Required: true
	Signature *string `json:"signature"`
}

func (m *PostSubmitPayload) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("rootHash", "body", m.RootHash); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("signature", "body", m.Signature); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// PostBalancePayload is the request body of POST /balance.
type PostBalancePayload struct {
	// Required: true
	OwnerAddress *string `json:"ownerAddress"`
}

func (m *PostBalancePayload) Validate(_ strfmt.Registry) error {
	return validate.Required("ownerAddress", "body", m.OwnerAddress)
}

// PostHistoryPayload is the request body of POST /history.
type PostHistoryPayload struct {
	// Required: true
	OwnerAddress *string `json:"ownerAddress"`
	Page         int64   `json:"page,omitempty"`
	PageSize     int64   `json:"pageSize,omitempty"`
}

func (m *PostHistoryPayload) Validate(_ strfmt.Registry) error {
	return validate.Required("ownerAddress", "body", m.OwnerAddress)
}

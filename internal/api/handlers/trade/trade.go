package trade

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github/uniagent/go-broker/internal/api/httperrors"
	"github/uniagent/go-broker/internal/broker"
	"github/uniagent/go-broker/internal/types"
	"github/uniagent/go-broker/internal/util"
)

const signPrompt = "Sign the rootHash with your wallet and POST to /submit"

// createTransactionResponse converts a broker preview into the wire shape
// shared by the four transaction-building endpoints.
func createTransactionResponse(result *broker.CreateResult) *types.CreateTransactionResponse {
	preview := &types.TransactionPreview{
		Steps: swag.Int64(int64(result.Steps)),
	}

	if result.Fees != nil {
		preview.TotalFeeUSD = result.Fees.TotalUSD.String()
		preview.GasFeeUSD = result.Fees.GasUSD.String()
		preview.ServiceFeeUSD = result.Fees.ServiceUSD.String()
		preview.LpFeeUSD = result.Fees.LiquidityProviderUSD.String()
	}

	return &types.CreateTransactionResponse{
		RootHash: swag.String(result.RootHash),
		Preview:  preview,
		Message:  signPrompt,
	}
}

// createTransactionError maps build failures. Input problems become 400s,
// everything else surfaces the engine's message verbatim as a 500.
func createTransactionError(c echo.Context, operation string, err error) error {
	var inputErr *broker.InputError
	if errors.As(err, &inputErr) {
		return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, inputErr.Error())
	}

	util.LogFromEchoContext(c).Error().Err(err).Str("operation", operation).Msg("Failed to build transaction")

	return httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeBuildFailed, err.Error())
}

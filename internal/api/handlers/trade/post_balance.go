package trade

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/api/httperrors"
	"github/uniagent/go-broker/internal/types"
	"github/uniagent/go-broker/internal/util"
)

func PostBalanceRoute(s *api.Server) *echo.Route {
	return s.Router.Trade.POST("/balance", postBalanceHandler(s))
}

func postBalanceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostBalancePayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		summary, err := s.Broker.Balance(ctx, *body.OwnerAddress)
		if err != nil {
			log.Error().Err(err).Msg("Failed to get balance")
			return httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, err.Error())
		}

		response := &types.BalanceResponse{
			OwnerAddress:    swag.String(summary.OwnerAddress),
			EvmAddress:      summary.EvmAddress,
			SolanaAddress:   summary.SolanaAddress,
			TotalBalanceUSD: summary.TotalUSD,
			Assets:          make([]*types.BalanceAsset, 0, len(summary.Assets)),
		}

		for _, asset := range summary.Assets {
			item := &types.BalanceAsset{
				Symbol:           asset.Symbol,
				Name:             asset.Name,
				TotalAmount:      asset.TotalAmount,
				TotalAmountInUSD: asset.TotalAmountInUSD,
				Chains:           make([]*types.BalanceChainAmount, 0, len(asset.Chains)),
			}

			for _, chainAmount := range asset.Chains {
				item.Chains = append(item.Chains, &types.BalanceChainAmount{
					Chain:   chainAmount.ChainName,
					ChainID: chainAmount.ChainID,
					Amount:  chainAmount.Amount,
				})
			}

			response.Assets = append(response.Assets, item)
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}

package trade

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/broker"
	"github/uniagent/go-broker/internal/broker/engine"
	"github/uniagent/go-broker/internal/types"
	"github/uniagent/go-broker/internal/util"
)

func PostBuyRoute(s *api.Server) *echo.Route {
	return s.Router.Trade.POST("/buy", postBuyHandler(s))
}

func postBuyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostBuyPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		result, err := s.Broker.CreateTransaction(ctx, &broker.CreateRequest{
			Operation:    engine.OperationBuy,
			OwnerAddress: *body.OwnerAddress,
			Chain:        *body.Chain,
			Token:        *body.Token,
			Amount:       *body.AmountInUSD,
			SlippageBps:  int(body.SlippageBps),
		})
		if err != nil {
			return createTransactionError(c, "buy", err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, createTransactionResponse(result))
	}
}

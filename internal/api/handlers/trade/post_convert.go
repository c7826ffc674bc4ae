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

func PostConvertRoute(s *api.Server) *echo.Route {
	return s.Router.Trade.POST("/convert", postConvertHandler(s))
}

func postConvertHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostConvertPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		result, err := s.Broker.CreateTransaction(ctx, &broker.CreateRequest{
			Operation:    engine.OperationConvert,
			OwnerAddress: *body.OwnerAddress,
			Chain:        *body.Chain,
			Asset:        *body.Asset,
			Amount:       *body.Amount,
			SlippageBps:  int(body.SlippageBps),
		})
		if err != nil {
			return createTransactionError(c, "convert", err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, createTransactionResponse(result))
	}
}

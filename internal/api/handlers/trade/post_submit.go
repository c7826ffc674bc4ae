package trade

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/api/httperrors"
	"github/uniagent/go-broker/internal/broker"
	"github/uniagent/go-broker/internal/broker/pending"
	"github/uniagent/go-broker/internal/types"
	"github/uniagent/go-broker/internal/util"
)

func PostSubmitRoute(s *api.Server) *echo.Route {
	return s.Router.Trade.POST("/submit", postSubmitHandler(s))
}

func postSubmitHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostSubmitPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		result, err := s.Broker.Submit(ctx, *body.RootHash, *body.Signature)
		if err != nil {
			var inputErr *broker.InputError
			switch {
			case errors.Is(err, pending.ErrNotFound):
				return httperrors.ErrNotFoundTransaction
			case errors.As(err, &inputErr):
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, inputErr.Error())
			default:
				log.Error().Err(err).Str("root_hash", *body.RootHash).Msg("Failed to submit transaction")
				return httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeSubmissionFailed, err.Error())
			}
		}

		response := &types.SubmitResponse{
			TransactionID: swag.String(result.TransactionID),
			ExplorerURL:   swag.String(result.ExplorerURL),
		}

		if result.Fees != nil {
			response.Fees = &types.SubmitFees{
				TotalUSD: result.Fees.TotalUSD.String(),
				GasUSD:   result.Fees.GasUSD.String(),
			}
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}

package trade

import (
	"fmt"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/api/httperrors"
	"github/uniagent/go-broker/internal/types"
	"github/uniagent/go-broker/internal/util"
)

const (
	defaultHistoryPage     = 1
	defaultHistoryPageSize = 10
)

func PostHistoryRoute(s *api.Server) *echo.Route {
	return s.Router.Trade.POST("/history", postHistoryHandler(s))
}

func postHistoryHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostHistoryPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		page := int(body.Page)
		if page <= 0 {
			page = defaultHistoryPage
		}

		pageSize := int(body.PageSize)
		if pageSize <= 0 {
			pageSize = defaultHistoryPageSize
		}

		historyPage, err := s.Broker.History(ctx, *body.OwnerAddress, page, pageSize)
		if err != nil {
			log.Error().Err(err).Msg("Failed to get history")
			return httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, err.Error())
		}

		response := &types.HistoryResponse{
			Page:     swag.Int64(int64(historyPage.Page)),
			PageSize: swag.Int64(int64(historyPage.PageSize)),
			Items:    make([]*types.HistoryItem, 0, len(historyPage.Items)),
		}

		for _, item := range historyPage.Items {
			response.Items = append(response.Items, &types.HistoryItem{
				TransactionID: item.TransactionID,
				Status:        item.Status,
				CreatedAt:     item.CreatedAt,
				ExplorerURL:   fmt.Sprintf("%s/activity/details?id=%s", s.Config.Engine.ExplorerBaseURL, item.TransactionID),
			})
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}

package handlers

import (
	"github.com/labstack/echo/v4"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/api/handlers/common"
	"github/uniagent/go-broker/internal/api/handlers/trade"
)

// AttachAllRoutes attaches all registered routes to the server's router.
func AttachAllRoutes(s *api.Server) {
	s.Router.Routes = []*echo.Route{
		common.GetHealthRoute(s),
		common.GetHealthyRoute(s),
		common.GetMetricsRoute(s),
		common.GetReadyRoute(s),
		common.GetVersionRoute(s),
		trade.GetChainsRoute(s),
		trade.PostBalanceRoute(s),
		trade.PostBuyRoute(s),
		trade.PostConvertRoute(s),
		trade.PostHistoryRoute(s),
		trade.PostSellRoute(s),
		trade.PostSubmitRoute(s),
		trade.PostTransferRoute(s),
	}
}

package common

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/config"
	"github/uniagent/go-broker/internal/types"
	"github/uniagent/go-broker/internal/util"
)

func GetHealthRoute(s *api.Server) *echo.Route {
	return s.Router.Root.GET("/health", getHealthHandler(s))
}

// getHealthHandler is the unauthenticated liveness endpoint. It reports the
// process as up without touching any dependency.
func getHealthHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return util.ValidateAndReturn(c, http.StatusOK, &types.GetHealthResponse{
			Status:    swag.String("ok"),
			Service:   config.ModuleName,
			Timestamp: s.Clock.Now().Unix(),
		})
	}
}

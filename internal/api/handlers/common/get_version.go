package common

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/config"
)

func GetVersionRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/version", getVersionHandler())
}

func getVersionHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, config.GetFormattedBuildArgs())
	}
}

package common

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/util"
)

const healthyCheckTimeout = 5 * time.Second

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// getHealthyHandler is the authenticated deep health check: besides component
// initialization it probes the execution engine. Guarded by the management
// secret as it may be slow and leaks dependency state.
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.QueryParam("mgmt-secret") != s.Config.Management.Secret {
			return echo.ErrUnauthorized
		}

		log := util.LogFromEchoContext(c)

		if !s.Ready() {
			return c.String(521, "Not ready.")
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), healthyCheckTimeout)
		defer cancel()

		if err := s.Engine.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Engine unreachable during health check")
			return c.String(521, "Not healthy.")
		}

		return c.String(http.StatusOK, "OK.")
	}
}

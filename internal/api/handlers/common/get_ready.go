package common

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github/uniagent/go-broker/internal/api"
)

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// getReadyHandler returns 200 once all server components are initialized.
// Returns 521 while components are still missing, e.g. during a prolonged
// startup or after a partial shutdown.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(521, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}

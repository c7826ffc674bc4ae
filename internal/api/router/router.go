package router

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/api/handlers"
	"github/uniagent/go-broker/internal/api/httperrors"
	"github/uniagent/go-broker/internal/api/middleware"
)

// Init sets up the echo instance, the middleware stack and all routes on the
// given server. Must be called after the wire-injected components exist.
func Init(s *api.Server) {
	s.Echo = echo.New()

	s.Echo.Debug = false
	s.Echo.HideBanner = true
	s.Echo.HidePort = true

	s.Echo.HTTPErrorHandler = HTTPErrorHandler(s.Config.Echo.HideInternalServerErrorDetails)

	s.Echo.Pre(echoMiddleware.RemoveTrailingSlash())

	if s.Config.Echo.EnableRecoverMiddleware {
		s.Echo.Use(echoMiddleware.Recover())
	}

	if s.Config.Echo.EnableRequestIDMiddleware {
		s.Echo.Use(echoMiddleware.RequestID())
	}

	if s.Config.Echo.EnableLoggerMiddleware {
		s.Echo.Use(middleware.Logger())
	}

	// CORS + Secure mirror the cors/helmet pair of a typical public JSON API
	if s.Config.Echo.EnableCORSMiddleware {
		s.Echo.Use(echoMiddleware.CORS())
	}

	if s.Config.Echo.EnableSecureMiddleware {
		s.Echo.Use(echoMiddleware.Secure())
	}

	if s.Config.Echo.EnablePrometheusMiddleware {
		s.Echo.Use(echoprometheus.NewMiddleware("broker"))
	}

	s.Router = &api.Router{
		Root:       s.Echo.Group(""),
		Management: s.Echo.Group("/-"),

		// all trade operations sit behind the optional static API key
		Trade: s.Echo.Group("", apiKeyMiddleware(s)),
	}

	handlers.AttachAllRoutes(s)
}

// apiKeyMiddleware guards the trade routes with the configured static API
// key, accepted either as header or as "apiKey" query parameter. With no key
// configured all requests pass, matching a development setup.
func apiKeyMiddleware(s *api.Server) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if s.Config.Auth.APIKey == "" {
				return next(c)
			}

			key := c.Request().Header.Get(s.Config.Auth.APIKeyHeader)
			if key == "" {
				key = c.QueryParam("apiKey")
			}

			if key != s.Config.Auth.APIKey {
				return httperrors.ErrUnauthorizedAPIKey
			}

			return next(c)
		}
	}
}

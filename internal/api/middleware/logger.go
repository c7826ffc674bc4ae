package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github/uniagent/go-broker/internal/util"
)

// Logger attaches a request-scoped zerolog logger (carrying the request id)
// to the request context and emits one line per handled request.
func Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			l := log.With().
				Str("request_id", id).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()

			ctx := context.WithValue(req.Context(), util.CTXKeyLogger, &l)
			ctx = context.WithValue(ctx, util.CTXKeyRequestID, id)
			c.SetRequest(req.WithContext(ctx))

			start := time.Now()
			err := next(c)

			event := l.Debug()
			if err != nil {
				event = l.Info().Err(err)
			}

			event.
				Int("status", c.Response().Status).
				Dur("duration", time.Since(start)).
				Msg("Handled request")

			return err
		}
	}
}

// LevelFromString parses a zerolog level, falling back to info.
func LevelFromString(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}

	return l
}

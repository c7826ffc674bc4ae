package util

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const (
	CTXKeyRequestID contextKey = "request_id"
	CTXKeyLogger    contextKey = "logger"
)

// RequestIDFromContext returns the request ID set by the request ID middleware.
func RequestIDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(CTXKeyRequestID).(string)
	if !ok {
		return ""
	}

	return id
}

// LogFromContext returns the request-scoped logger if one was injected by the
// logger middleware, the global logger otherwise.
func LogFromContext(ctx context.Context) *zerolog.Logger {
	l, ok := ctx.Value(CTXKeyLogger).(*zerolog.Logger)
	if !ok || l == nil {
		return &log.Logger
	}

	return l
}

// LogFromEchoContext is LogFromContext over the request context of c.
func LogFromEchoContext(c echo.Context) *zerolog.Logger {
	return LogFromContext(c.Request().Context())
}

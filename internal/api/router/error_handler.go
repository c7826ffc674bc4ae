package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github/uniagent/go-broker/internal/api/httperrors"
	"github/uniagent/go-broker/internal/types"
)

// HTTPErrorHandler renders every error as an httperrors payload. Unknown
// errors become a generic 500; their cause is only exposed when
// hideInternalDetails is disabled (local development).
func HTTPErrorHandler(hideInternalDetails bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var payload *httperrors.HTTPError

		var validationErr *httperrors.HTTPValidationError
		var httpErr *httperrors.HTTPError
		var echoErr *echo.HTTPError

		switch {
		case errors.As(err, &validationErr):
			if writeErr := c.JSON(int(*validationErr.Code), validationErr); writeErr != nil {
				log.Error().Err(writeErr).Msg("Failed to write validation error response")
			}
			return
		case errors.As(err, &httpErr):
			payload = httpErr
		case errors.As(err, &echoErr):
			payload = httperrors.NewFromEcho(echoErr)
		default:
			payload = httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusInternalServerError))
			if !hideInternalDetails {
				payload.Detail = err.Error()
			}
		}

		if writeErr := c.JSON(int(*payload.Code), payload); writeErr != nil {
			log.Error().Err(writeErr).Msg("Failed to write error response")
		}
	}
}

package util

import (
	"net/http"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/uniagent/go-broker/internal/api/httperrors"
	"github/uniagent/go-broker/internal/types"
)

// Validatable is implemented by all wire payloads in internal/types.
type Validatable interface {
	Validate(formats strfmt.Registry) error
}

// BindAndValidateBody binds the JSON request body to v and runs its validations.
// Validation failures are returned as a 400 HTTPValidationError listing each
// offending field, matching the error shape of the rest of the API.
func BindAndValidateBody(c echo.Context, v Validatable) error {
	binder := c.Echo().Binder.(*echo.DefaultBinder)

	if err := binder.BindBody(c, v); err != nil {
		return err
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates the response payload v before writing it out
// with the given code. An invalid response is a programming error and
// surfaces as 500 instead of leaking a half-filled payload.
func ValidateAndReturn(c echo.Context, code int, v Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		LogFromEchoContext(c).Error().Err(err).Msg("Response payload validation failed")
		return echo.ErrInternalServerError
	}

	return c.JSON(code, v)
}

func validatePayload(c echo.Context, v Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		var details []*types.HTTPValidationErrorDetail

		switch e := err.(type) {
		case *errors.CompositeError:
			for _, ve := range e.Errors {
				details = append(details, compositeErrorDetail(ve)...)
			}
		case *errors.Validation:
			details = append(details, validationErrorDetail(e))
		default:
			details = append(details, &types.HTTPValidationErrorDetail{
				Key:   swag.String("body"),
				In:    swag.String("body"),
				Error: swag.String(err.Error()),
			})
		}

		LogFromEchoContext(c).Debug().Err(err).Msg("Payload did validate")

		return httperrors.NewHTTPValidationError(
			http.StatusBadRequest,
			types.PublicHTTPErrorTypeGeneric,
			http.StatusText(http.StatusBadRequest),
			details,
		)
	}

	return nil
}

func compositeErrorDetail(err error) []*types.HTTPValidationErrorDetail {
	switch e := err.(type) {
	case *errors.CompositeError:
		var details []*types.HTTPValidationErrorDetail
		for _, ve := range e.Errors {
			details = append(details, compositeErrorDetail(ve)...)
		}
		return details
	case *errors.Validation:
		return []*types.HTTPValidationErrorDetail{validationErrorDetail(e)}
	default:
		return []*types.HTTPValidationErrorDetail{{
			Key:   swag.String("body"),
			In:    swag.String("body"),
			Error: swag.String(err.Error()),
		}}
	}
}

func validationErrorDetail(e *errors.Validation) *types.HTTPValidationErrorDetail {
	return &types.HTTPValidationErrorDetail{
		Key:   swag.String(e.Name),
		In:    swag.String("body"),
		Error: swag.String(e.Error()),
	}
}

package types

import (
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// Public error type discriminators carried in the "type" field of HTTPError
// responses. Clients may switch on these instead of parsing titles.
const (
	PublicHTTPErrorTypeGeneric             = "generic"
	PublicHTTPErrorTypeUnauthorized        = "UNAUTHORIZED"
	PublicHTTPErrorTypeUnknownChain        = "UNKNOWN_CHAIN"
	PublicHTTPErrorTypeUnknownAsset        = "UNKNOWN_ASSET"
	PublicHTTPErrorTypeBuildFailed         = "BUILD_FAILED"
	PublicHTTPErrorTypeSubmissionFailed    = "SUBMISSION_FAILED"
	PublicHTTPErrorTypeTransactionNotFound = "TRANSACTION_NOT_FOUND"
)

// HTTPValidationErrorDetail describes a single invalid request field.
type HTTPValidationErrorDetail struct {
	// name of the field
	// Required: true
	Key *string `json:"key"`
	// location of the field, e.g. body
	// Required: true
	In *string `json:"in"`
	// error describing field validation failure
	// Required: true
	Error *string `json:"error"`
}

// Validate validates this HTTP validation error detail
func (m *HTTPValidationErrorDetail) Validate(_ strfmt.Registry) error {
	if err := validate.Required("key", "body", m.Key); err != nil {
		return err
	}

	if err := validate.Required("in", "body", m.In); err != nil {
		return err
	}

	return validate.Required("error", "body", m.Error)
}

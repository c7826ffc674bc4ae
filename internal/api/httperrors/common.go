package httperrors

import (
	"net/http"

	"github/uniagent/go-broker/internal/types"
)

var (
	// ErrNotFoundTransaction is returned on submit for a root hash that never
	// existed or already expired. The two cases are deliberately
	// indistinguishable to the caller.
	ErrNotFoundTransaction = NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeTransactionNotFound, "Transaction not found or expired. Create a new one.")

	// ErrUnauthorizedAPIKey is returned when API key auth is enabled and the
	// request carries no or a wrong key.
	ErrUnauthorizedAPIKey = NewHTTPError(http.StatusUnauthorized, types.PublicHTTPErrorTypeUnauthorized, "Unauthorized")
)

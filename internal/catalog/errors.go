package catalog

import "fmt"

// ============================================================================
// CATALOG ERROR CODES
// ============================================================================
// These constants mirror domain error codes to avoid circular imports.
// The handler layer maps these to HTTP status codes.

const (
	codeInternal    = "internal"
	codeInvalid     = "invalid"
	codeNotFound    = "not_found"
	codeUnavailable = "unavailable"
)

// CatalogError represents a catalog-specific error with a code and message.
type CatalogError struct {
	Code    string
	Message string
}

func (e *CatalogError) Error() string {
	return e.Message
}

// ErrorCode returns the error code for HTTP status mapping.
func (e *CatalogError) ErrorCode() string {
	return e.Code
}

// newCatalogError creates a new catalog error.
func newCatalogError(code, message string) *CatalogError {
	return &CatalogError{Code: code, Message: message}
}

var (
	// ErrProductNotFound is returned when a product code is unknown.
	ErrProductNotFound = newCatalogError(codeNotFound, "Product not found")

	// ErrBaseURLRequired is returned when the REST source has no base URL.
	ErrBaseURLRequired = newCatalogError(codeInvalid, "Catalog base URL is required")

	// ErrSourceUnavailable is returned when the upstream catalog cannot be reached.
	ErrSourceUnavailable = newCatalogError(codeUnavailable, "Catalog source unavailable")
)

// ErrUnexpectedStatus creates an error for a non-2xx catalog response.
func ErrUnexpectedStatus(status int) error {
	return &CatalogError{
		Code:    codeInternal,
		Message: fmt.Sprintf("unexpected catalog response status: %d", status),
	}
}

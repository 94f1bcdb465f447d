package cartstore

import "fmt"

// ============================================================================
// CART STORE ERROR CODES
// ============================================================================
// These constants mirror domain error codes to avoid circular imports.
// The handler layer maps these to HTTP status codes.

const (
	codeInternal = "internal"
	codeInvalid  = "invalid"
)

// StoreError represents a cart-store error with a code and message.
type StoreError struct {
	Code    string
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}

// ErrorCode returns the error code for HTTP status mapping.
func (e *StoreError) ErrorCode() string {
	return e.Code
}

var (
	// ErrRedisURLRequired is returned when the redis provider has no URL.
	ErrRedisURLRequired = &StoreError{Code: codeInvalid, Message: "Redis URL is required for the redis cart store"}

	// ErrDatabaseURLRequired is returned when the postgres provider has no URL.
	ErrDatabaseURLRequired = &StoreError{Code: codeInvalid, Message: "Database URL is required for the postgres cart store"}
)

// ErrUnknownProvider creates an error for unknown store providers.
func ErrUnknownProvider(provider string) error {
	return &StoreError{
		Code:    codeInvalid,
		Message: fmt.Sprintf("unknown cart store provider: %s", provider),
	}
}

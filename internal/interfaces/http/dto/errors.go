package dto

import (
	"net/http"

	"github.com/erp/ledgercore/internal/domain/shared"
)

// Error codes raised by the HTTP layer itself. Domain errors keep the code
// the domain assigned and carry their kind alongside it.
// Format: ERR_<CATEGORY>_<DESCRIPTION>
const (
	ErrCodeInternal = "ERR_INTERNAL"

	ErrCodeValidation  = "ERR_VALIDATION"
	ErrCodeBadRequest  = "ERR_BAD_REQUEST"
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"

	// ErrCodeMissingScope is used when the company or user header is absent or malformed
	ErrCodeMissingScope = "ERR_MISSING_SCOPE"

	ErrCodeNotFound = "ERR_NOT_FOUND"
	ErrCodeConflict = "ERR_CONFLICT"

	// ErrCodeRequestInFlight is used when a request with the same
	// Idempotency-Key is still being processed
	ErrCodeRequestInFlight = "ERR_REQUEST_IN_FLIGHT"

	ErrCodePayloadTooLarge = "ERR_PAYLOAD_TOO_LARGE"
	ErrCodeTimeout         = "ERR_TIMEOUT"
)

// ErrorCodeHTTPStatus maps HTTP-layer error codes to status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodeMissingScope:    http.StatusBadRequest,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeConflict:        http.StatusConflict,
	ErrCodeRequestInFlight: http.StatusConflict,
	ErrCodePayloadTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeTimeout:         http.StatusGatewayTimeout,
}

// ErrorKindHTTPStatus maps domain error kinds to status codes
var ErrorKindHTTPStatus = map[shared.ErrorKind]int{
	shared.KindValidation:        http.StatusBadRequest,
	shared.KindOutOfBalance:      http.StatusUnprocessableEntity,
	shared.KindAccountResolution: http.StatusUnprocessableEntity,
	shared.KindStateConflict:     http.StatusConflict,
	shared.KindPersistence:       http.StatusInternalServerError,
	shared.KindNotFound:          http.StatusNotFound,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// KindHTTPStatus returns the HTTP status code for a domain error kind
func KindHTTPStatus(kind shared.ErrorKind) int {
	if status, ok := ErrorKindHTTPStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ValidationDetail describes one rejected request field
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

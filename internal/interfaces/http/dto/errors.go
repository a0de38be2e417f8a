package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeStorageUnavailable = "STORAGE_UNAVAILABLE"
)

// Input error codes
const (
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
)

// Authentication error codes
const (
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeAccessDenied = "ACCESS_DENIED"
	ErrCodeTokenExpired = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "TOKEN_INVALID"
	ErrCodeTokenRevoked = "TOKEN_REVOKED"
)

// Resource error codes
const (
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeAlreadyExists       = "ALREADY_EXISTS"
	ErrCodeConcurrencyConflict = "CONCURRENCY_CONFLICT"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed here fall back to 422 for business rule violations
// via GetHTTPStatus.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeStorageUnavailable: http.StatusServiceUnavailable,

	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeValidationFailed: http.StatusBadRequest,

	// Domain validation failures -> 400 Bad Request
	"INVALID_EMAIL":        http.StatusBadRequest,
	"INVALID_PASSWORD":     http.StatusBadRequest,
	"INVALID_DISPLAY_NAME": http.StatusBadRequest,
	"INVALID_LANGUAGE":     http.StatusBadRequest,
	"INVALID_NAME":         http.StatusBadRequest,
	"INVALID_TITLE":        http.StatusBadRequest,
	"INVALID_CONTENT":      http.StatusBadRequest,
	"INVALID_DATES":        http.StatusBadRequest,
	"INVALID_EFFORT":       http.StatusBadRequest,
	"INVALID_STATUS":       http.StatusBadRequest,
	"INVALID_PRIORITY":     http.StatusBadRequest,
	"INVALID_ROLE":         http.StatusBadRequest,
	"INVALID_MEMBER_ROLE":  http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	ErrCodeTokenExpired:   http.StatusUnauthorized,
	ErrCodeTokenInvalid:   http.StatusUnauthorized,
	ErrCodeTokenRevoked:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_LOCKED":      http.StatusForbidden,
	"ACCOUNT_INACTIVE":    http.StatusForbidden,
	ErrCodeAccessDenied:   http.StatusForbidden,

	// Resource errors
	ErrCodeNotFound:            http.StatusNotFound,
	"USER_NOT_FOUND":           http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	"EMAIL_TAKEN":              http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	// Business rule violations -> 422 Unprocessable Entity
	"INVALID_STATE":       http.StatusUnprocessableEntity,
	"ALREADY_ARCHIVED":    http.StatusUnprocessableEntity,
	"ALREADY_DEACTIVATED": http.StatusUnprocessableEntity,
	"SELF_DEACTIVATION":   http.StatusUnprocessableEntity,
	"ASSIGNEE_NOT_MEMBER": http.StatusUnprocessableEntity,
	"ROLE_NOT_GRANTED":    http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unknown codes map to 422: they come from domain rules, not transport.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusUnprocessableEntity
}

package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned to API clients
const (
	CodeInvalidInput         = "INVALID_INPUT"
	CodeNotFound             = "NOT_FOUND"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeInternalError        = "INTERNAL_ERROR"
	CodeLinkNotFound         = "LINK_NOT_FOUND"
	CodeLinkKeyExists        = "LINK_KEY_EXISTS"
	CodeLinkDisabled         = "LINK_DISABLED"
	CodeLinkExpired          = "LINK_EXPIRED"
	CodeInvalidURL           = "INVALID_URL"
	CodeInvalidDomain        = "INVALID_DOMAIN"
	CodeInvalidKey           = "INVALID_KEY"
	CodeClickNotFound        = "CLICK_NOT_FOUND"
	CodeCustomerNotFound     = "CUSTOMER_NOT_FOUND"
	CodeInvalidAmount        = "INVALID_AMOUNT"
	CodeProgramNotFound      = "PROGRAM_NOT_FOUND"
	CodeEnrollmentNotFound   = "ENROLLMENT_NOT_FOUND"
	CodeFraudEventNotFound   = "FRAUD_EVENT_NOT_FOUND"
	CodeFraudEventResolved   = "FRAUD_EVENT_RESOLVED"
	CodeInvalidStatus        = "INVALID_STATUS"
	CodePaymentProviderError = "PAYMENT_PROVIDER_ERROR"
	CodeAnalyticsError       = "ANALYTICS_SERVICE_ERROR"
	CodeRateLimitExceeded    = "RATE_LIMIT_EXCEEDED"
	CodePayloadTooLarge      = "PAYLOAD_TOO_LARGE"
)

// APIError is an error that carries the HTTP status and client-facing message
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NotFound returns a 404 APIError
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// BadRequest returns a 400 APIError
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Unauthorized returns a 401 APIError
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden returns a 403 APIError
func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

// Conflict returns a 409 APIError
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// Gone returns a 410 APIError
func Gone(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusGone, Code: code, Message: message}
}

// PayloadTooLarge returns a 413 APIError
func PayloadTooLarge(message string) *APIError {
	return &APIError{StatusCode: http.StatusRequestEntityTooLarge, Code: CodePayloadTooLarge, Message: message}
}

// TooManyRequests returns a 429 APIError
func TooManyRequests(message string) *APIError {
	return &APIError{StatusCode: http.StatusTooManyRequests, Code: CodeRateLimitExceeded, Message: message}
}

// ServiceUnavailable returns a 503 APIError wrapping the upstream failure
func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: err}
}

// InternalError returns a sanitized 500 APIError; the cause is kept for logging only
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}

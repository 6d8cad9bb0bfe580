package notary

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"golang.org/x/oauth2"
)

// ErrorCategory is the normalized failure taxonomy for QTSP calls.
type ErrorCategory string

const (
	ErrorTimeout        ErrorCategory = "timeout"
	ErrorAuthentication ErrorCategory = "authentication"
	ErrorProviderOutage ErrorCategory = "provider_outage"
	ErrorBadData        ErrorCategory = "bad_data"
	ErrorRateLimited    ErrorCategory = "rate_limited"
	ErrorInternal       ErrorCategory = "internal"
)

// NotaryError wraps a failed QTSP call with its category.
type NotaryError struct {
	Category   ErrorCategory
	Operation  string
	StatusCode int
	Message    string
	Underlying error
	Retryable  bool
}

func (e *NotaryError) Error() string {
	msg := fmt.Sprintf("qtsp %s [%s]: %s", e.Operation, e.Category, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Underlying != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Underlying)
	}
	return msg
}

func (e *NotaryError) Unwrap() error {
	return e.Underlying
}

func newError(category ErrorCategory, op string, status int, message string, underlying error) *NotaryError {
	return &NotaryError{
		Category:   category,
		Operation:  op,
		StatusCode: status,
		Message:    message,
		Underlying: underlying,
		Retryable:  category == ErrorTimeout || category == ErrorProviderOutage || category == ErrorRateLimited,
	}
}

// CircuitOpen is returned for calls suspended by an open circuit breaker.
func CircuitOpen(op string) *NotaryError {
	return newError(ErrorProviderOutage, op, 0, "provider calls suspended after repeated outages", nil)
}

// IsRetryable reports whether a later attempt may succeed.
func IsRetryable(err error) bool {
	var ne *NotaryError
	if errors.As(err, &ne) {
		return ne.Retryable
	}
	return false
}

// CategoryOf extracts the category, defaulting to internal.
func CategoryOf(err error) ErrorCategory {
	var ne *NotaryError
	if errors.As(err, &ne) {
		return ne.Category
	}
	return ErrorInternal
}

// classifyTransport categorizes an error returned by the HTTP client before
// any response was read.
func classifyTransport(op string, err error) *NotaryError {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		status := 0
		if retrieveErr.Response != nil {
			status = retrieveErr.Response.StatusCode
		}
		return newError(ErrorAuthentication, op, status, "token request rejected", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return newError(ErrorTimeout, op, 0, "request timed out", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newError(ErrorTimeout, op, 0, "request timed out", err)
	}
	return newError(ErrorProviderOutage, op, 0, "request failed", err)
}

// classifyStatus categorizes a non-2xx response.
func classifyStatus(op string, status int, body string) *NotaryError {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return newError(ErrorAuthentication, op, status, "credentials rejected", nil)
	case status == http.StatusTooManyRequests:
		return newError(ErrorRateLimited, op, status, "rate limited", nil)
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return newError(ErrorTimeout, op, status, "provider timed out", nil)
	case status >= 500:
		return newError(ErrorProviderOutage, op, status, "provider unavailable", nil)
	default:
		return newError(ErrorBadData, op, status, body, nil)
	}
}

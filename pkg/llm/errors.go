package llm

import (
	"errors"
	"fmt"
	"net/http"
)

// Provider failure classes. APIError unwraps to one of these so callers can
// use errors.Is without caring which vendor produced the failure.
var (
	ErrUnauthorized    = errors.New("provider rejected credentials")
	ErrRateLimited     = errors.New("provider rate limit exceeded")
	ErrPaymentRequired = errors.New("provider credits exhausted")
	ErrBadRequest      = errors.New("provider rejected request")
	ErrServer          = errors.New("provider server error")
	ErrEmptyResponse   = errors.New("provider returned no content")
)

// APIError is a non-2xx answer from an LLM provider
type APIError struct {
	Provider   string
	StatusCode int
	Body       string
}

// NewAPIError builds an APIError, truncating very long bodies
func NewAPIError(provider string, status int, body []byte) *APIError {
	const maxBody = 512
	b := string(body)
	if len(b) > maxBody {
		b = b[:maxBody] + "..."
	}
	return &APIError{Provider: provider, StatusCode: status, Body: b}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// Unwrap maps the HTTP status onto a failure class
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case e.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case e.StatusCode == http.StatusPaymentRequired:
		return ErrPaymentRequired
	case e.StatusCode >= 500:
		return ErrServer
	default:
		return ErrBadRequest
	}
}

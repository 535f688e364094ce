package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"

	"github.com/themobileprof/symptom-checker-be/pkg/llm"
)

// Failure classes surfaced to callers. Every error returned by Analyze
// wraps exactly one of these.
var (
	ErrNotConfigured     = errors.New("service misconfigured")
	ErrInvalidAPIKey     = errors.New("invalid API key")
	ErrRateLimited       = errors.New("rate limited")
	ErrCreditsExhausted  = errors.New("credits exhausted")
	ErrUpstream          = errors.New("upstream error")
	ErrTimeout           = errors.New("analysis timed out")
	ErrUnavailable       = errors.New("analysis temporarily unavailable")
	ErrMalformedResponse = errors.New("malformed response")
)

var reasons = []struct {
	err    error
	reason string
}{
	{ErrNotConfigured, "not_configured"},
	{ErrInvalidAPIKey, "invalid_api_key"},
	{ErrRateLimited, "rate_limited"},
	{ErrCreditsExhausted, "credits_exhausted"},
	{ErrTimeout, "timeout"},
	{ErrUnavailable, "circuit_open"},
	{ErrMalformedResponse, "malformed_response"},
	{ErrUpstream, "upstream"},
}

// Reason is a short machine tag for err, "" for nil
func Reason(err error) string {
	if err == nil {
		return ""
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return "upstream"
}

// classify wraps a provider or breaker error in its failure class
func classify(err error) error {
	var class error
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		class = ErrUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		class = ErrTimeout
	case errors.Is(err, llm.ErrUnauthorized):
		class = ErrInvalidAPIKey
	case errors.Is(err, llm.ErrRateLimited):
		class = ErrRateLimited
	case errors.Is(err, llm.ErrPaymentRequired):
		class = ErrCreditsExhausted
	case errors.Is(err, llm.ErrEmptyResponse):
		class = ErrMalformedResponse
	default:
		class = ErrUpstream
	}
	return fmt.Errorf("%w: %w", class, err)
}

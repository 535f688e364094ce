package firstmeasures

import (
	"context"
	"errors"
	"fmt"

	"github.com/themobileprof/symptom-checker-be/pkg/llm"
)

// Tag names why the AI path did not produce text. The tags only matter
// for logs: every tag leads to the keyword fallback.
type Tag string

const (
	TagNoAPIKey      Tag = "NO_API_KEY"
	TagInvalidAPIKey Tag = "INVALID_API_KEY"
	TagEmptyResponse Tag = "EMPTY_RESPONSE"
	TagTimeout       Tag = "TIMEOUT"
	TagTransport     Tag = "TRANSPORT"
)

// Error is a tagged AI-path failure
type Error struct {
	Tag Tag
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Tag)
	}
	return fmt.Sprintf("%s: %v", e.Tag, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// TagOf returns the tag carried by err, "" when err is not tagged
func TagOf(err error) Tag {
	var fmErr *Error
	if errors.As(err, &fmErr) {
		return fmErr.Tag
	}
	return ""
}

func tagError(err error) *Error {
	switch {
	case errors.Is(err, llm.ErrUnauthorized):
		return &Error{Tag: TagInvalidAPIKey, Err: err}
	case errors.Is(err, llm.ErrEmptyResponse):
		return &Error{Tag: TagEmptyResponse, Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Tag: TagTimeout, Err: err}
	default:
		return &Error{Tag: TagTransport, Err: err}
	}
}

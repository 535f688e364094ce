package llm

import (
	"context"
)

// Client interface for LLM API interactions
type Client interface {
	// ChatCompletion sends a single non-streaming completion request
	ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

package llm

import (
	"context"
	"sync"
)

// MockClient implements the Client interface for testing
type MockClient struct {
	mu sync.Mutex

	// ChatFunc allows customizing the completion behavior
	ChatFunc func(context.Context, ChatRequest) (*ChatResponse, error)

	// Tracking for assertions
	ChatCalls []ChatRequest
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates a mock that always answers with reply
func NewMockClient(reply string) *MockClient {
	return &MockClient{
		ChatFunc: func(_ context.Context, req ChatRequest) (*ChatResponse, error) {
			return TextResponse(req.Model, reply), nil
		},
	}
}

// NewFailingMockClient creates a mock that always fails with err
func NewFailingMockClient(err error) *MockClient {
	return &MockClient{
		ChatFunc: func(context.Context, ChatRequest) (*ChatResponse, error) {
			return nil, err
		},
	}
}

// ChatCompletion implements Client.ChatCompletion
func (m *MockClient) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	m.mu.Lock()
	m.ChatCalls = append(m.ChatCalls, req)
	fn := m.ChatFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}
	return TextResponse(req.Model, "This is a mock response."), nil
}

// CallCount returns the number of completion calls made
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ChatCalls)
}

// LastRequest returns the most recent request, if any
func (m *MockClient) LastRequest() (ChatRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.ChatCalls) == 0 {
		return ChatRequest{}, false
	}
	return m.ChatCalls[len(m.ChatCalls)-1], true
}

// TextResponse wraps text in a single-choice ChatResponse
func TextResponse(model, text string) *ChatResponse {
	return &ChatResponse{
		ID:    "mock-response-1",
		Model: model,
		Choices: []Choice{
			{
				Message:      ChatMessage{Role: "assistant", Content: text},
				FinishReason: "stop",
			},
		},
	}
}

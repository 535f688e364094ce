// Package client is a Go client for the symptom checker HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/themobileprof/symptom-checker-be/internal/checker"
	"github.com/themobileprof/symptom-checker-be/internal/firstmeasures"
	"github.com/themobileprof/symptom-checker-be/internal/models"
	"github.com/themobileprof/symptom-checker-be/internal/symptoms"
)

// Errors matched with errors.Is against an *Error
var (
	ErrBadRequest         = errors.New("bad request")
	ErrRateLimited        = errors.New("rate limited")
	ErrCreditsExhausted   = errors.New("credits exhausted")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrTimeout            = errors.New("analysis timed out")
	ErrAnalysisFailed     = errors.New("analysis failed")
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// Error is a non-2xx response from the API
type Error struct {
	StatusCode int
	Message    string `json:"error"`
	Details    string `json:"details"`
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("symptom checker: %d %s (%s)", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("symptom checker: %d %s", e.StatusCode, e.Message)
}

// Unwrap maps the status code onto a sentinel
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusPaymentRequired:
		return ErrCreditsExhausted
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	case http.StatusGatewayTimeout:
		return ErrTimeout
	case http.StatusBadGateway:
		return ErrAnalysisFailed
	default:
		return ErrUnexpectedResponse
	}
}

// Config holds configuration for the client
type Config struct {
	BaseURL string        // e.g. http://localhost:8080
	APIKey  string        // sent as the apikey header when set
	Timeout time.Duration // Default: 45s
}

// Client calls the symptom checker API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a new client
func New(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 45 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		apiKey:     config.APIKey,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// AnalyzeSymptoms calls POST /api/analyze-symptoms
func (c *Client) AnalyzeSymptoms(ctx context.Context, in symptoms.Input) (*models.AnalysisResult, error) {
	var out models.AnalysisResult
	if err := c.post(ctx, "/api/analyze-symptoms", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Recommendations calls POST /api/recommendations
func (c *Client) Recommendations(ctx context.Context, in symptoms.Input) (*models.AnalysisResult, error) {
	var out models.AnalysisResult
	if err := c.post(ctx, "/api/recommendations", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Check calls POST /api/check
func (c *Client) Check(ctx context.Context, in symptoms.Input) (*checker.Report, error) {
	var out checker.Report
	if err := c.post(ctx, "/api/check", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FirstMeasures calls POST /api/first-measures
func (c *Client) FirstMeasures(ctx context.Context, symptomsText string, quickSymptoms []string) (*firstmeasures.Result, error) {
	body := struct {
		SymptomsText  string   `json:"symptomsText"`
		QuickSymptoms []string `json:"quickSymptoms"`
	}{symptomsText, quickSymptoms}

	var out firstmeasures.Result
	if err := c.post(ctx, "/api/first-measures", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &Error{StatusCode: resp.StatusCode}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		if json.Unmarshal(raw, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

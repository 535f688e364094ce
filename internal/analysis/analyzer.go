// Package analysis asks a language model for a specialist analysis and
// turns its answer into an AnalysisResult.
//
// Model output is not deterministic: two calls with the same input may
// recommend different specialists.
package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/themobileprof/symptom-checker-be/internal/models"
	"github.com/themobileprof/symptom-checker-be/internal/privacy"
	"github.com/themobileprof/symptom-checker-be/internal/prompt"
	"github.com/themobileprof/symptom-checker-be/internal/symptoms"
	"github.com/themobileprof/symptom-checker-be/pkg/llm"
)

// Config tunes the analyzer
type Config struct {
	Model        string
	Timeout      time.Duration // Default: 30s
	MaxFailures  uint32        // consecutive failures before the breaker opens. Default: 5
	ResetTimeout time.Duration // Default: 30s
}

// Analyzer runs the model analysis behind a circuit breaker
type Analyzer struct {
	client  llm.Client
	builder *prompt.Builder
	breaker *gobreaker.CircuitBreaker
	model   string
	timeout time.Duration
	logger  *logrus.Logger
}

// NewAnalyzer creates an analyzer. A nil client yields an analyzer whose
// Analyze always fails with ErrNotConfigured without any network call.
func NewAnalyzer(client llm.Client, config Config, logger *logrus.Logger) *Analyzer {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.MaxFailures == 0 {
		config.MaxFailures = 5
	}
	if config.ResetTimeout == 0 {
		config.ResetTimeout = 30 * time.Second
	}

	settings := gobreaker.Settings{
		Name:        "analysis",
		MaxRequests: 1,
		Timeout:     config.ResetTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.MaxFailures
		},
		// Requests the caller abandoned say nothing about provider health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"circuit_breaker": name,
				"from_state":      from.String(),
				"to_state":        to.String(),
			}).Warn("Circuit breaker state changed")
		},
	}

	return &Analyzer{
		client:  client,
		builder: prompt.NewBuilder(),
		breaker: gobreaker.NewCircuitBreaker(settings),
		model:   config.Model,
		timeout: config.Timeout,
		logger:  logger,
	}
}

// Configured reports whether a model client is available
func (a *Analyzer) Configured() bool {
	return a.client != nil
}

// Analyze requests an analysis for in. Transport, credential, quota and
// timeout failures are returned as errors wrapping one of the package's
// failure classes. Content that cannot be parsed is not an error: it
// yields the fallback analysis.
func (a *Analyzer) Analyze(ctx context.Context, in symptoms.Input) (*models.AnalysisResult, error) {
	if a.client == nil {
		return nil, ErrNotConfigured
	}

	redacted := privacy.RedactInput(in)
	req := llm.ChatRequest{
		Model:       a.model,
		Messages:    a.builder.AnalysisMessages(redacted),
		Temperature: prompt.AnalysisTemperature,
		MaxTokens:   prompt.AnalysisMaxTokens,
		JSONOutput:  true,
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	out, err := a.breaker.Execute(func() (interface{}, error) {
		return a.client.ChatCompletion(ctx, req)
	})
	latency := time.Since(start)

	if err != nil {
		classified := classify(err)
		a.logger.WithFields(logrus.Fields{
			"reason":     Reason(classified),
			"latency_ms": latency.Milliseconds(),
			"breaker":    a.breaker.State().String(),
		}).WithError(err).Warn("AI analysis failed")
		return nil, classified
	}

	resp := out.(*llm.ChatResponse)
	result, parsed := ParseResponse(resp.Text(), in.Age, in.Gender)

	entry := a.logger.WithFields(logrus.Fields{
		"latency_ms":    latency.Milliseconds(),
		"total_tokens":  resp.Usage.TotalTokens,
		"specialist":    result.PrimaryRecommendation.Specialty,
		"urgency_level": result.UrgencyLevel(),
		"pii_redacted":  privacy.ContainsPII(in.Symptoms),
	})
	if !parsed {
		entry.WithField("raw", privacy.SanitizeForLogging(resp.Text())).Warn("AI analysis was not valid JSON, using fallback analysis")
	} else {
		entry.Info("AI analysis completed")
	}

	return result, nil
}

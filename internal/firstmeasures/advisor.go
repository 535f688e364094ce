// Package firstmeasures produces short, safety-first home-care tips for
// the reported symptoms. Tips come from a model when one is configured
// and from a keyword table otherwise.
package firstmeasures

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"

	"github.com/themobileprof/symptom-checker-be/internal/fallback"
	"github.com/themobileprof/symptom-checker-be/internal/privacy"
	"github.com/themobileprof/symptom-checker-be/internal/prompt"
	"github.com/themobileprof/symptom-checker-be/pkg/llm"
)

// Where an answer came from
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// Result is what the advisor returns to callers
type Result struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Cached bool   `json:"cached,omitempty"`
	Reason Tag    `json:"reason,omitempty"`
}

// Config tunes the advisor
type Config struct {
	Model     string
	Timeout   time.Duration // Default: 10s
	CacheSize int           // Default: 256
	CacheTTL  time.Duration // Default: 15m
}

// Advisor generates first measures
type Advisor struct {
	client  llm.Client
	builder *prompt.Builder
	cache   *expirable.LRU[string, string]
	model   string
	timeout time.Duration
	logger  *logrus.Logger
}

// NewAdvisor creates an advisor. A nil client means no credential is
// configured and every call goes straight to the fallback.
func NewAdvisor(client llm.Client, config Config, logger *logrus.Logger) *Advisor {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.CacheSize == 0 {
		config.CacheSize = 256
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = 15 * time.Minute
	}

	return &Advisor{
		client:  client,
		builder: prompt.NewBuilder(),
		cache:   expirable.NewLRU[string, string](config.CacheSize, nil, config.CacheTTL),
		model:   config.Model,
		timeout: config.Timeout,
		logger:  logger,
	}
}

// Advise returns AI tips when possible and the keyword fallback otherwise.
// It always returns non-empty text.
func (a *Advisor) Advise(ctx context.Context, symptomsText string, quickSymptoms []string) Result {
	key := cacheKey(symptomsText, quickSymptoms)
	if text, ok := a.cache.Get(key); ok {
		return Result{Text: text, Source: SourceAI, Cached: true}
	}

	text, err := a.Generate(ctx, symptomsText, quickSymptoms)
	if err != nil {
		tag := TagOf(err)
		entry := a.logger.WithField("reason", string(tag))
		if tag == TagNoAPIKey {
			entry.Debug("First measures served from fallback")
		} else {
			entry.WithError(err).Warn("AI first measures failed, using fallback")
		}
		return Result{
			Text:   fallback.FirstMeasures(symptomsText, quickSymptoms),
			Source: SourceFallback,
			Reason: tag,
		}
	}

	a.cache.Add(key, text)
	return Result{Text: text, Source: SourceAI}
}

// Generate runs only the AI path. Errors are *Error values.
func (a *Advisor) Generate(ctx context.Context, symptomsText string, quickSymptoms []string) (string, error) {
	if a.client == nil {
		return "", &Error{Tag: TagNoAPIKey}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	resp, err := a.client.ChatCompletion(ctx, llm.ChatRequest{
		Model:       a.model,
		Messages:    a.builder.FirstMeasuresMessages(privacy.RedactSensitiveData(symptomsText), quickSymptoms),
		Temperature: prompt.FirstMeasuresTemperature,
		MaxTokens:   prompt.FirstMeasuresMaxTokens,
	})
	if err != nil {
		return "", tagError(err)
	}

	text := llm.StripCodeFence(resp.Text())
	if text == "" {
		return "", &Error{Tag: TagEmptyResponse}
	}

	a.logger.WithFields(logrus.Fields{
		"latency_ms": time.Since(start).Milliseconds(),
		"length":     len(text),
	}).Debug("AI first measures generated")

	return text, nil
}

func cacheKey(symptomsText string, quickSymptoms []string) string {
	labels := make([]string, 0, len(quickSymptoms))
	for _, q := range quickSymptoms {
		if q = strings.ToLower(strings.TrimSpace(q)); q != "" {
			labels = append(labels, q)
		}
	}
	sort.Strings(labels)

	text := strings.Join(strings.Fields(strings.ToLower(symptomsText)), " ")
	return text + "|" + strings.Join(labels, ",")
}

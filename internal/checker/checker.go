// Package checker runs one symptom check end to end: the rule engine
// always, and the model analysis and first measures side by side.
package checker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/themobileprof/symptom-checker-be/internal/analysis"
	"github.com/themobileprof/symptom-checker-be/internal/fallback"
	"github.com/themobileprof/symptom-checker-be/internal/firstmeasures"
	"github.com/themobileprof/symptom-checker-be/internal/models"
	"github.com/themobileprof/symptom-checker-be/internal/recommend"
	"github.com/themobileprof/symptom-checker-be/internal/symptoms"
)

// Where a report's analysis came from
const (
	SourceAI    = "ai"
	SourceRules = "rules"
)

// Analyzer produces a model analysis
type Analyzer interface {
	Analyze(ctx context.Context, in symptoms.Input) (*models.AnalysisResult, error)
}

// Advisor produces first measures
type Advisor interface {
	Advise(ctx context.Context, symptomsText string, quickSymptoms []string) firstmeasures.Result
}

// Report is the outcome of one check
type Report struct {
	ID            string                 `json:"id"`
	Analysis      *models.AnalysisResult `json:"analysis"`
	Source        string                 `json:"source"`
	AIError       string                 `json:"aiError,omitempty"`
	Notice        string                 `json:"notice,omitempty"`
	FirstMeasures firstmeasures.Result   `json:"firstMeasures"`
	Disclaimer    string                 `json:"disclaimer"`
}

// Stage identifies a partial result
type Stage string

const (
	StageRules               Stage = "rules"
	StageAnalysis            Stage = "analysis"
	StageAnalysisUnavailable Stage = "analysis_unavailable"
	StageFirstMeasures       Stage = "first_measures"
)

// Update is one partial result, delivered as soon as it is known
type Update struct {
	Stage         Stage
	Analysis      *models.AnalysisResult
	Reason        string
	Notice        string
	FirstMeasures *firstmeasures.Result
}

// Checker wires the engines together
type Checker struct {
	rules    *recommend.Engine
	analyzer Analyzer
	advisor  Advisor
	logger   *logrus.Logger
}

// New creates a checker. analyzer may be nil when AI analysis is disabled.
func New(rules *recommend.Engine, analyzer Analyzer, advisor Advisor, logger *logrus.Logger) *Checker {
	return &Checker{
		rules:    rules,
		analyzer: analyzer,
		advisor:  advisor,
		logger:   logger,
	}
}

// Recommend runs only the rule engine
func (c *Checker) Recommend(in symptoms.Input) *models.AnalysisResult {
	return c.rules.Recommend(in)
}

// Check runs a full check. It never fails: a failed model analysis leaves
// the rule-based result in place and is recorded in AIError.
func (c *Checker) Check(ctx context.Context, in symptoms.Input) *Report {
	return c.Run(ctx, in, nil)
}

// Run is Check with progress reporting. onUpdate, when non-nil, is called
// once per stage from one goroutine at a time; the rules stage is always
// first.
func (c *Checker) Run(ctx context.Context, in symptoms.Input, onUpdate func(Update)) *Report {
	start := time.Now()
	report := &Report{
		ID:         uuid.NewString(),
		Analysis:   c.rules.Recommend(in),
		Source:     SourceRules,
		Disclaimer: fallback.Disclaimer,
	}

	var mu sync.Mutex
	emit := func(u Update) {
		if onUpdate == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		onUpdate(u)
	}
	emit(Update{Stage: StageRules, Analysis: report.Analysis})

	var g errgroup.Group

	g.Go(func() error {
		if c.analyzer == nil {
			report.AIError = analysis.Reason(analysis.ErrNotConfigured)
			report.Notice = fallback.Notice(report.AIError)
			emit(Update{Stage: StageAnalysisUnavailable, Reason: report.AIError, Notice: report.Notice})
			return nil
		}

		result, err := c.analyzer.Analyze(ctx, in)
		if err != nil {
			report.AIError = analysis.Reason(err)
			report.Notice = fallback.Notice(report.AIError)
			emit(Update{Stage: StageAnalysisUnavailable, Reason: report.AIError, Notice: report.Notice})
			return nil
		}

		report.Analysis = result
		report.Source = SourceAI
		emit(Update{Stage: StageAnalysis, Analysis: result})
		return nil
	})

	g.Go(func() error {
		res := c.advisor.Advise(ctx, in.Symptoms, in.QuickSymptoms)
		report.FirstMeasures = res
		emit(Update{Stage: StageFirstMeasures, FirstMeasures: &res})
		return nil
	})

	// Neither task reports an error; Wait is the join point.
	_ = g.Wait()

	c.logger.WithFields(logrus.Fields{
		"check_id":              report.ID,
		"empty_input":           in.Empty(),
		"symptoms_matched":      len(symptoms.NewMatcher(in).Present()),
		"source":                report.Source,
		"ai_error":              report.AIError,
		"specialist":            report.Analysis.PrimaryRecommendation.Specialty,
		"urgency_level":         report.Analysis.UrgencyLevel(),
		"first_measures_source": report.FirstMeasures.Source,
		"duration_ms":           time.Since(start).Milliseconds(),
	}).Info("Symptom check completed")

	return report
}

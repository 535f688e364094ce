package checker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themobileprof/symptom-checker-be/internal/analysis"
	"github.com/themobileprof/symptom-checker-be/internal/catalog"
	"github.com/themobileprof/symptom-checker-be/internal/fallback"
	"github.com/themobileprof/symptom-checker-be/internal/firstmeasures"
	"github.com/themobileprof/symptom-checker-be/internal/models"
	"github.com/themobileprof/symptom-checker-be/internal/recommend"
	"github.com/themobileprof/symptom-checker-be/internal/symptoms"
)

type stubAnalyzer struct {
	result *models.AnalysisResult
	err    error
	wait   <-chan struct{}
}

func (s *stubAnalyzer) Analyze(ctx context.Context, _ symptoms.Input) (*models.AnalysisResult, error) {
	if s.wait != nil {
		select {
		case <-s.wait:
		case <-time.After(2 * time.Second):
			return nil, fmt.Errorf("%w: advisor never ran", analysis.ErrTimeout)
		}
	}
	return s.result, s.err
}

type stubAdvisor struct {
	started chan struct{}
}

func (s *stubAdvisor) Advise(_ context.Context, text string, quick []string) firstmeasures.Result {
	if s.started != nil {
		close(s.started)
	}
	return firstmeasures.Result{Text: fallback.FirstMeasures(text, quick), Source: firstmeasures.SourceFallback}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return logger
}

func aiResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		PrimaryRecommendation: models.Recommendation{Specialty: "Neurologist", MatchPercentage: 90, UrgencyLevel: models.UrgencyModerate},
		UrgencyPercentage:     60,
	}
}

func TestCheck_AISupersedesRules(t *testing.T) {
	c := New(recommend.NewEngine(), &stubAnalyzer{result: aiResult()}, &stubAdvisor{}, quietLogger())

	report := c.Check(context.Background(), symptoms.Input{QuickSymptoms: []string{"Joint Pain"}})

	_, err := uuid.Parse(report.ID)
	assert.NoError(t, err)
	assert.Equal(t, SourceAI, report.Source)
	assert.Equal(t, "Neurologist", report.Analysis.PrimaryRecommendation.Specialty)
	assert.Empty(t, report.AIError)
	assert.Empty(t, report.Notice)
	assert.Equal(t, fallback.Disclaimer, report.Disclaimer)
	assert.Contains(t, report.FirstMeasures.Text, fallback.FirstMeasuresDisclaimer)
}

func TestCheck_AIFailureKeepsRules(t *testing.T) {
	analyzer := &stubAnalyzer{err: fmt.Errorf("%w: 429", analysis.ErrRateLimited)}
	c := New(recommend.NewEngine(), analyzer, &stubAdvisor{}, quietLogger())

	report := c.Check(context.Background(), symptoms.Input{QuickSymptoms: []string{"Joint Pain", "Morning Stiffness"}})

	assert.Equal(t, SourceRules, report.Source)
	assert.Equal(t, catalog.Rheumatologist, report.Analysis.PrimaryRecommendation.Specialty)
	assert.Equal(t, "rate_limited", report.AIError)
	assert.Equal(t, fallback.Notice("rate_limited"), report.Notice)
}

func TestCheck_NoAnalyzer(t *testing.T) {
	c := New(recommend.NewEngine(), nil, &stubAdvisor{}, quietLogger())

	report := c.Check(context.Background(), symptoms.Input{})

	assert.Equal(t, SourceRules, report.Source)
	assert.Equal(t, "not_configured", report.AIError)
	assert.Equal(t, fallback.Notice(fallback.ReasonNotConfigured), report.Notice)
	assert.Equal(t, catalog.GeneralPhysician, report.Analysis.PrimaryRecommendation.Specialty)
}

func TestCheck_RunsAnalysisAndAdviceConcurrently(t *testing.T) {
	started := make(chan struct{})
	analyzer := &stubAnalyzer{result: aiResult(), wait: started}
	c := New(recommend.NewEngine(), analyzer, &stubAdvisor{started: started}, quietLogger())

	report := c.Check(context.Background(), symptoms.Input{Symptoms: "headache"})

	assert.Equal(t, SourceAI, report.Source, "analysis should not wait for a sequential advisor call")
}

func TestRun_Updates(t *testing.T) {
	c := New(recommend.NewEngine(), &stubAnalyzer{result: aiResult()}, &stubAdvisor{}, quietLogger())

	var stages []Stage
	report := c.Run(context.Background(), symptoms.Input{Symptoms: "fever"}, func(u Update) {
		stages = append(stages, u.Stage)
		switch u.Stage {
		case StageRules, StageAnalysis:
			assert.NotNil(t, u.Analysis)
		case StageFirstMeasures:
			require.NotNil(t, u.FirstMeasures)
			assert.NotEmpty(t, u.FirstMeasures.Text)
		}
	})

	require.Len(t, stages, 3)
	assert.Equal(t, StageRules, stages[0])
	assert.ElementsMatch(t, []Stage{StageAnalysis, StageFirstMeasures}, stages[1:])
	assert.Equal(t, SourceAI, report.Source)
}

func TestRun_UnavailableUpdate(t *testing.T) {
	c := New(recommend.NewEngine(), &stubAnalyzer{err: analysis.ErrUnavailable}, &stubAdvisor{}, quietLogger())

	var unavailable *Update
	c.Run(context.Background(), symptoms.Input{Symptoms: "rash"}, func(u Update) {
		if u.Stage == StageAnalysisUnavailable {
			unavailable = &u
		}
	})

	require.NotNil(t, unavailable)
	assert.Equal(t, "circuit_open", unavailable.Reason)
	assert.Equal(t, fallback.Notice(fallback.ReasonCircuitOpen), unavailable.Notice)
}

func TestRun_LogsInputShape(t *testing.T) {
	logger, hook := test.NewNullLogger()
	c := New(recommend.NewEngine(), nil, &stubAdvisor{}, logger)

	c.Check(context.Background(), symptoms.Input{Symptoms: "I have a cough and a fever", QuickSymptoms: []string{"Fatigue"}})
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Symptom check completed", entry.Message)
	assert.Equal(t, false, entry.Data["empty_input"])
	assert.Equal(t, 3, entry.Data["symptoms_matched"])
	assert.Equal(t, SourceRules, entry.Data["source"])

	c.Check(context.Background(), symptoms.Input{Symptoms: "  "})
	entry = hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, true, entry.Data["empty_input"])
	assert.Equal(t, 0, entry.Data["symptoms_matched"])
}

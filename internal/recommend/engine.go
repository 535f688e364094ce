// Package recommend is the rule-based recommendation engine. It is pure:
// no I/O, no shared mutable state, identical output for identical input.
package recommend

import (
	"github.com/themobileprof/symptom-checker-be/internal/catalog"
	"github.com/themobileprof/symptom-checker-be/internal/fallback"
	"github.com/themobileprof/symptom-checker-be/internal/models"
	"github.com/themobileprof/symptom-checker-be/internal/symptoms"
	"github.com/themobileprof/symptom-checker-be/internal/triage"
)

const (
	// MaxAlternatives bounds the alternatives list
	MaxAlternatives = 4

	unmatchedAlternativeReason = "Listed as a further option from the specialist catalog; none of your symptoms matched its rules."
)

// Engine produces rule-based analyses. The zero value is not usable; use
// NewEngine.
type Engine struct {
	screener *triage.Screener
}

// NewEngine creates an engine using the default emergency keywords
func NewEngine() *Engine {
	return &Engine{screener: triage.NewScreener()}
}

// Recommend always returns a complete result. With no matching rule the
// primary is a General Physician.
func (e *Engine) Recommend(in symptoms.Input) *models.AnalysisResult {
	m := symptoms.NewMatcher(in)
	matched := matchSpecialists(m)

	primaryKey := catalog.GeneralPhysician
	if len(matched) > 0 {
		primaryKey = matched[0]
	}

	level := urgencyLevel(m, matched)
	flags := e.screener.Flags(m.Corpus())

	primary := catalog.MustLookup(primaryKey)
	primaryRec := recommendation(primary, ScoreSpecialist(primary, m, PrimaryWeights), level)
	if len(matched) == 0 {
		primaryRec.Reasoning = noMatchReason
	} else {
		primaryRec.Reasoning = primaryReasons[primaryKey]
	}

	matchedSet := make(map[string]bool, len(matched))
	for _, key := range matched {
		matchedSet[key] = true
	}

	altKeys := alternativeKeys(primaryKey, matched)
	alternatives := make([]models.Recommendation, 0, len(altKeys))
	for _, key := range altKeys {
		s := catalog.MustLookup(key)
		rec := recommendation(s, ScoreSpecialist(s, m, AlternativeWeights), level)
		if matchedSet[key] {
			rec.Reasoning = primaryReasons[key]
		} else {
			rec.Reasoning = unmatchedAlternativeReason
		}
		alternatives = append(alternatives, rec)
	}

	return &models.AnalysisResult{
		PrimaryRecommendation:        primaryRec,
		Alternatives:                 alternatives,
		UrgencyPercentage:            triage.Percentage(level),
		EmergencyFlags:               flags,
		DifferentialDiagnosis:        append([]string{}, primary.Conditions...),
		NextSteps:                    fallback.DefaultNextSteps(),
		AgeSpecificConsiderations:    fallback.AgeConsideration(in.Age),
		GenderSpecificConsiderations: fallback.GenderConsideration(in.Gender),
		Reasoning:                    buildReasoning(matched, flags),
	}
}

// alternativeKeys lists the other matched specialists in match order, then
// the rest of the catalog in catalog order, capped at MaxAlternatives.
func alternativeKeys(primaryKey string, matched []string) []string {
	keys := make([]string, 0, MaxAlternatives)
	used := map[string]bool{primaryKey: true}

	add := func(key string) {
		if len(keys) < MaxAlternatives && !used[key] {
			used[key] = true
			keys = append(keys, key)
		}
	}
	for _, key := range matched {
		add(key)
	}
	for _, key := range catalog.Keys() {
		add(key)
	}
	return keys
}

func urgencyLevel(m *symptoms.Matcher, matched []string) string {
	switch {
	case m.Has("chest pain") || m.Has("shortness of breath"):
		return models.UrgencyHigh
	case len(matched) > 0:
		return models.UrgencyModerate
	default:
		return models.UrgencyLow
	}
}

func recommendation(s catalog.Specialist, match int, level string) models.Recommendation {
	return models.Recommendation{
		Key:             s.Key,
		Specialty:       s.Specialty,
		MatchPercentage: match,
		UrgencyLevel:    level,
		Conditions:      append([]string{}, s.Conditions...),
		Description:     s.Description,
		Icon:            string(s.Icon),
	}
}

package recommend

import (
	"math"

	"github.com/themobileprof/symptom-checker-be/internal/catalog"
	"github.com/themobileprof/symptom-checker-be/internal/models"
	"github.com/themobileprof/symptom-checker-be/internal/symptoms"
)

// Weights are the base and range of a match percentage
type Weights struct {
	Base  float64
	Range float64
}

var (
	// PrimaryWeights score the primary recommendation
	PrimaryWeights = Weights{Base: 78, Range: 22}
	// AlternativeWeights score alternatives; the base is lower so an
	// alternative never outranks the primary at the same ratio.
	AlternativeWeights = Weights{Base: 50, Range: 45}
)

// Score computes clamp(40, 99, round(base + matched/total * range))
func Score(matched, total int, w Weights) int {
	ratio := 0.0
	if total > 0 {
		ratio = float64(matched) / float64(total)
	}
	if ratio > 1 {
		ratio = 1
	}
	return models.ClampMatch(int(math.Round(w.Base + ratio*w.Range)))
}

// MatchedSymptoms counts the specialist's defining symptoms present in the
// request, plus one when its bonus keyword appears in the free text.
func MatchedSymptoms(s catalog.Specialist, m *symptoms.Matcher) int {
	n := m.Count(s.Symptoms)
	if s.BonusKeyword != "" && m.TextContains(s.BonusKeyword) {
		n++
	}
	return n
}

// ScoreSpecialist scores a specialist against a request
func ScoreSpecialist(s catalog.Specialist, m *symptoms.Matcher, w Weights) int {
	return Score(MatchedSymptoms(s, m), s.TotalSymptoms(), w)
}

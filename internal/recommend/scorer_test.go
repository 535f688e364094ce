package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/themobileprof/symptom-checker-be/internal/catalog"
	"github.com/themobileprof/symptom-checker-be/internal/symptoms"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		matched int
		total   int
		w       Weights
		want    int
	}{
		{"primary none", 0, 2, PrimaryWeights, 78},
		{"primary half", 1, 2, PrimaryWeights, 89},
		{"primary full clamps", 2, 2, PrimaryWeights, 99},
		{"alternative none", 0, 2, AlternativeWeights, 50},
		{"alternative half rounds up", 2, 4, AlternativeWeights, 73},
		{"alternative full", 2, 2, AlternativeWeights, 95},
		{"zero total", 0, 0, AlternativeWeights, 50},
		{"ratio over one is capped", 5, 2, AlternativeWeights, 95},
		{"floor", 0, 1, Weights{Base: 10, Range: 5}, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.matched, tt.total, tt.w))
		})
	}
}

func TestScore_PrimaryBeatsAlternativeAtEqualRatio(t *testing.T) {
	for total := 1; total <= 4; total++ {
		for matched := 0; matched <= total; matched++ {
			assert.GreaterOrEqual(t, Score(matched, total, PrimaryWeights), Score(matched, total, AlternativeWeights))
		}
	}
}

// A strict superset of a specialist's defining symptoms never scores lower.
func TestScoreSpecialist_Monotonic(t *testing.T) {
	for _, s := range catalog.Specialists() {
		for _, w := range []Weights{PrimaryWeights, AlternativeWeights} {
			prev := -1
			var labels []string
			for i := 0; i <= len(s.Symptoms); i++ {
				if i > 0 {
					labels = append(labels, s.Symptoms[i-1])
				}
				got := ScoreSpecialist(s, symptoms.Match("", labels), w)
				assert.GreaterOrEqual(t, got, prev, "%s with %v", s.Key, labels)
				prev = got
			}
			if s.BonusKeyword != "" {
				got := ScoreSpecialist(s, symptoms.Match(s.BonusKeyword, labels), w)
				assert.GreaterOrEqual(t, got, prev, "%s with bonus", s.Key)
			}
		}
	}
}

func TestMatchedSymptoms_Bonus(t *testing.T) {
	pm := catalog.MustLookup(catalog.PainManagement)
	assert.Equal(t, 0, MatchedSymptoms(pm, symptoms.Match("", nil)))
	assert.Equal(t, 1, MatchedSymptoms(pm, symptoms.Match("chronic", nil)))
	assert.Equal(t, 2, MatchedSymptoms(pm, symptoms.Match("chronic back pain", nil)))
	assert.Equal(t, 0, MatchedSymptoms(pm, symptoms.Match("", []string{"chronic"})), "the bonus keyword only counts in free text")
}

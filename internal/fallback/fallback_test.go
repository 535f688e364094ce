package fallback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysis(t *testing.T) {
	result := Analysis(34, "female")

	assert.Equal(t, "General Physician", result.PrimaryRecommendation.Specialty)
	assert.Equal(t, 70, result.PrimaryRecommendation.MatchPercentage)
	assert.Equal(t, "moderate", result.PrimaryRecommendation.UrgencyLevel)

	require.Len(t, result.Alternatives, 1)
	assert.Equal(t, UrgentCare, result.Alternatives[0].Specialty)
	assert.Equal(t, 60, result.Alternatives[0].MatchPercentage)

	assert.Equal(t, 50, result.UrgencyPercentage)
	assert.NotNil(t, result.EmergencyFlags)
	assert.Empty(t, result.EmergencyFlags)
	assert.Equal(t, []string{"Further evaluation needed"}, result.DifferentialDiagnosis)
	assert.Len(t, result.NextSteps, 3)
	assert.Equal(t, "Standard precautions for 34-year-old patients apply.", result.AgeSpecificConsiderations)
	assert.Equal(t, "Standard considerations for female patients apply.", result.GenderSpecificConsiderations)
}

func TestAnalysis_NoGender(t *testing.T) {
	assert.Equal(t, "", Analysis(10, "").GenderSpecificConsiderations)
}

func TestAnalysis_Independent(t *testing.T) {
	a := Analysis(30, "")
	a.NextSteps[0] = "mutated"
	assert.NotEqual(t, "mutated", Analysis(30, "").NextSteps[0])
}

func TestMissingPrimary(t *testing.T) {
	p := MissingPrimary()
	assert.Equal(t, "General Physician", p.Specialty)
	assert.Equal(t, 75, p.MatchPercentage)
	assert.Equal(t, []string{"General health assessment needed"}, p.Conditions)
}

func TestConsiderations(t *testing.T) {
	assert.Equal(t, "For a 67-year-old patient, standard age-appropriate evaluation protocols apply.", AgeConsideration(67))
	assert.Equal(t, "Gender-specific factors for male patients are considered.", GenderConsideration("male"))
	assert.Equal(t, "", GenderConsideration(""))
}

func TestFirstMeasures(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		quick        []string
		wantContains []string
		wantTips     int
	}{
		{
			name:         "skin rash and itching",
			text:         "I have a skin rash with itching on my arm",
			wantContains: []string{"Keep the area clean and dry. Avoid scratching."},
			wantTips:     2,
		},
		{
			name:         "chest pain triggers emergency tip first",
			text:         "",
			quick:        []string{"Chest Pain", "Shortness of Breath"},
			wantContains: []string{"1. If chest pain or severe shortness of breath is present", "Stay hydrated, avoid smoke and dust."},
			wantTips:     3,
		},
		{
			name:         "fever and tired",
			text:         "Fever since yesterday and I'm tired",
			wantContains: []string{"Monitor temperature"},
			wantTips:     2,
		},
		{
			name:         "word boundary prevents partial match",
			text:         "feverishly working",
			wantContains: []string{"1. Rest and stay hydrated.", "2. Note down when symptoms started"},
			wantTips:     4,
		},
		{
			name:         "empty input",
			wantContains: []string{"1. Rest and stay hydrated."},
			wantTips:     4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FirstMeasures(tt.text, tt.quick)

			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}
			assert.True(t, strings.HasSuffix(got, FirstMeasuresDisclaimer), "must end with the disclaimer")
			assert.Len(t, strings.Split(got, "\n\n"), tt.wantTips)
		})
	}
}

func TestFirstMeasures_NeverEmpty(t *testing.T) {
	inputs := []struct {
		text  string
		quick []string
	}{
		{"", nil},
		{"   ", []string{}},
		{"", []string{""}},
		{"qwerty", []string{"zzz"}},
	}
	for _, in := range inputs {
		got := FirstMeasures(in.text, in.quick)
		assert.NotEmpty(t, got)
		assert.True(t, strings.HasSuffix(got, FirstMeasuresDisclaimer))
	}
}

func TestNotice(t *testing.T) {
	assert.Contains(t, Notice(ReasonTimeout), "longer than usual")
	assert.Contains(t, Notice(ReasonCircuitOpen), "temporarily unavailable")
	assert.Equal(t, defaultNotice, Notice("something else"))
}

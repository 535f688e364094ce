package recommend

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themobileprof/symptom-checker-be/internal/catalog"
	"github.com/themobileprof/symptom-checker-be/internal/models"
	"github.com/themobileprof/symptom-checker-be/internal/symptoms"
)

func specialties(recs []models.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Key
	}
	return out
}

func TestRecommend_JointPainAndMorningStiffness(t *testing.T) {
	engine := NewEngine()
	result := engine.Recommend(symptoms.Input{QuickSymptoms: []string{"Joint Pain", "Morning Stiffness"}})

	assert.Equal(t, catalog.Rheumatologist, result.PrimaryRecommendation.Key)
	assert.Equal(t, models.UrgencyModerate, result.PrimaryRecommendation.UrgencyLevel)
	assert.Equal(t, 60, result.UrgencyPercentage)
	assert.GreaterOrEqual(t, result.PrimaryRecommendation.MatchPercentage, 78)
	assert.Equal(t, 99, result.PrimaryRecommendation.MatchPercentage)
	assert.Equal(t, "Joint pain with morning stiffness suggests a rheumatology evaluation.", result.Reasoning[0])
}

func TestRecommend_CrushingChestPain(t *testing.T) {
	engine := NewEngine()
	result := engine.Recommend(symptoms.Input{Symptoms: "I have crushing chest pain and can't breathe"})

	assert.Equal(t, catalog.Cardiologist, result.PrimaryRecommendation.Key)
	assert.Equal(t, models.UrgencyHigh, result.PrimaryRecommendation.UrgencyLevel)
	assert.Equal(t, 85, result.UrgencyPercentage)
	assert.Equal(t, 89, result.PrimaryRecommendation.MatchPercentage)

	assert.Equal(t, []string{"chest pain", "can't breathe", "crushing chest"}, result.EmergencyFlags)
	require.NotEmpty(t, result.Reasoning)
	assert.True(t, strings.HasPrefix(result.Reasoning[0], "Emergency warning signs were detected"))
}

func TestRecommend_EmptyInput(t *testing.T) {
	engine := NewEngine()
	result := engine.Recommend(symptoms.Input{})

	assert.Equal(t, catalog.GeneralPhysician, result.PrimaryRecommendation.Key)
	assert.Equal(t, "General Physician", result.PrimaryRecommendation.Specialty)
	assert.Equal(t, models.UrgencyLow, result.PrimaryRecommendation.UrgencyLevel)
	assert.Equal(t, 40, result.UrgencyPercentage)
	assert.Equal(t, 78, result.PrimaryRecommendation.MatchPercentage)

	assert.Equal(t,
		[]string{catalog.Rheumatologist, catalog.Cardiologist, catalog.Neurologist, catalog.Pulmonologist},
		specialties(result.Alternatives))
	for _, alt := range result.Alternatives {
		assert.Equal(t, 50, alt.MatchPercentage)
	}

	assert.Equal(t, []string{noMatchReason}, result.Reasoning)
	assert.NotNil(t, result.EmergencyFlags)
	assert.Empty(t, result.EmergencyFlags)
}

func TestRecommend_FirstMatchWins(t *testing.T) {
	engine := NewEngine()
	result := engine.Recommend(symptoms.Input{
		QuickSymptoms: []string{"Joint Pain", "Morning Stiffness", "Chest Pain"},
	})

	// Rheumatology outranks cardiology in the rule order, even though chest
	// pain drives urgency to high.
	assert.Equal(t, catalog.Rheumatologist, result.PrimaryRecommendation.Key)
	assert.Equal(t, models.UrgencyHigh, result.PrimaryRecommendation.UrgencyLevel)
	assert.Equal(t, catalog.Cardiologist, result.Alternatives[0].Key)
	assert.Contains(t, result.Reasoning, "Other possible matches: Cardiologist. Consider discussing with your doctor.")
}

func TestRecommend_Deduplicates(t *testing.T) {
	engine := NewEngine()
	result := engine.Recommend(symptoms.Input{Symptoms: "headache with tingling, also dizzy and numb"})

	assert.Equal(t, catalog.Neurologist, result.PrimaryRecommendation.Key)
	for _, alt := range result.Alternatives {
		assert.NotEqual(t, catalog.Neurologist, alt.Key)
	}
	assert.Equal(t, 99, result.PrimaryRecommendation.MatchPercentage)
}

func TestRecommend_ChronicPain(t *testing.T) {
	engine := NewEngine()
	result := engine.Recommend(symptoms.Input{Symptoms: "chronic back pain"})

	assert.Equal(t, catalog.Physiatrist, result.PrimaryRecommendation.Key)
	require.NotEmpty(t, result.Alternatives)
	pm := result.Alternatives[0]
	assert.Equal(t, catalog.PainManagement, pm.Key)
	// back pain + chronic bonus = 2 of 4
	assert.Equal(t, 73, pm.MatchPercentage)
	assert.Contains(t, result.Reasoning, "Other possible matches: Pain Management. Consider discussing with your doctor.")
}

func TestRecommend_OtherMatchesNamesAtMostThree(t *testing.T) {
	engine := NewEngine()
	result := engine.Recommend(symptoms.Input{
		QuickSymptoms: []string{"Cough", "Nausea", "Skin Rash", "Eye Pain", "Sore Throat"},
	})

	assert.Equal(t, catalog.Pulmonologist, result.PrimaryRecommendation.Key)
	assert.Equal(t,
		[]string{catalog.Gastroenterologist, catalog.Dermatologist, catalog.Ophthalmologist, catalog.ENT},
		specialties(result.Alternatives))
	assert.Contains(t, result.Reasoning,
		"Other possible matches: Gastroenterologist, Dermatologist, Ophthalmologist. Consider discussing with your doctor.")
}

func TestRecommend_BodyParts(t *testing.T) {
	engine := NewEngine()
	result := engine.Recommend(symptoms.Input{
		BodyParts: []symptoms.BodyPart{{Part: "Chest", SymptomType: "pain"}},
	})

	assert.Equal(t, catalog.Cardiologist, result.PrimaryRecommendation.Key)
	assert.Equal(t, []string{"chest pain"}, result.EmergencyFlags)
}

func TestRecommend_Considerations(t *testing.T) {
	engine := NewEngine()
	result := engine.Recommend(symptoms.Input{Symptoms: "fever", Age: 70, Gender: "male"})

	assert.Equal(t, catalog.GeneralPhysician, result.PrimaryRecommendation.Key)
	assert.Equal(t, "For a 70-year-old patient, standard age-appropriate evaluation protocols apply.", result.AgeSpecificConsiderations)
	assert.Equal(t, "Gender-specific factors for male patients are considered.", result.GenderSpecificConsiderations)
	assert.Equal(t, catalog.MustLookup(catalog.GeneralPhysician).Conditions, result.DifferentialDiagnosis)
	assert.Len(t, result.NextSteps, 3)
}

func totalityInputs() []symptoms.Input {
	inputs := []symptoms.Input{
		{},
		{Symptoms: "   "},
		{QuickSymptoms: []string{""}},
		{Symptoms: "chronic"},
		{Symptoms: "xyzzy plugh"},
		{BodyParts: []symptoms.BodyPart{{}}},
	}
	for _, e := range catalog.SynonymSet() {
		for _, p := range e.Phrases {
			inputs = append(inputs, symptoms.Input{Symptoms: p})
		}
		inputs = append(inputs, symptoms.Input{QuickSymptoms: []string{e.Symptom}})
	}
	all := catalog.CanonicalSymptoms()
	inputs = append(inputs, symptoms.Input{QuickSymptoms: all, Symptoms: "chronic"})
	return inputs
}

func TestRecommend_Totality(t *testing.T) {
	engine := NewEngine()
	allowed := map[int]bool{40: true, 60: true, 85: true}

	for _, in := range totalityInputs() {
		result := engine.Recommend(in)
		require.NotNil(t, result)

		p := result.PrimaryRecommendation
		assert.NotEmpty(t, p.Specialty)
		assert.GreaterOrEqual(t, p.MatchPercentage, 40)
		assert.LessOrEqual(t, p.MatchPercentage, 99)
		assert.True(t, allowed[result.UrgencyPercentage], "urgency %d for %+v", result.UrgencyPercentage, in)

		assert.Len(t, result.Alternatives, MaxAlternatives)
		for _, alt := range result.Alternatives {
			assert.NotEqual(t, p.Key, alt.Key)
			assert.GreaterOrEqual(t, alt.MatchPercentage, 40)
			assert.LessOrEqual(t, alt.MatchPercentage, 99)
		}
		assert.NotEmpty(t, result.Reasoning)
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	engine := NewEngine()
	for _, in := range totalityInputs() {
		a, err := json.Marshal(engine.Recommend(in))
		require.NoError(t, err)
		b, err := json.Marshal(NewEngine().Recommend(in.Clone()))
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b))
	}
}

func TestRecommend_DoesNotMutateInput(t *testing.T) {
	in := symptoms.Input{QuickSymptoms: []string{"Joint Pain"}, Medications: []string{"aspirin"}}
	snapshot := in.Clone()
	NewEngine().Recommend(in)
	assert.Equal(t, snapshot, in)
}

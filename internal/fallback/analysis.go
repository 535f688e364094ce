// Package fallback provides deterministic, network-free substitutes for
// the AI-backed components.
package fallback

import (
	"fmt"

	"github.com/themobileprof/symptom-checker-be/internal/catalog"
	"github.com/themobileprof/symptom-checker-be/internal/models"
)

const (
	// UrgentCare is not a catalog specialist; it only appears as the
	// alternative in the unparseable-response fallback.
	UrgentCare = "Urgent Care"

	// DefaultUrgencyPercentage is used when a model omits urgencyPercentage
	DefaultUrgencyPercentage = 50

	// MissingPrimaryMatch is the match percentage of the General Physician
	// substituted when a model omits primaryRecommendation.
	MissingPrimaryMatch = 75

	// MissingAlternativeMatch is used for a model alternative without a
	// match percentage: the lowest score the rule engine gives an
	// alternative.
	MissingAlternativeMatch = 50

	// UnparseableMatch is the General Physician match percentage when the
	// model's content could not be parsed at all.
	UnparseableMatch = 70
)

// Disclaimer accompanies every recommendation the service returns
const Disclaimer = "This tool does not provide a medical diagnosis. Recommendations are generated from keyword matching and/or an AI model and must be confirmed by a qualified healthcare professional. In an emergency, call your local emergency number immediately."

// DefaultNextSteps is the generic plan used when nothing better is known
func DefaultNextSteps() []string {
	return []string{
		"Schedule an appointment with the recommended specialist",
		"Keep a symptom diary",
		"Avoid self-medication",
	}
}

// MissingPrimary is substituted when parsed model output lacks a primary
// recommendation.
func MissingPrimary() models.Recommendation {
	return generalPhysician(
		MissingPrimaryMatch,
		"Based on the symptoms provided, a general evaluation is recommended.",
		[]string{"General health assessment needed"},
	)
}

// AgeConsideration is the generic age sentence
func AgeConsideration(age int) string {
	return fmt.Sprintf("For a %d-year-old patient, standard age-appropriate evaluation protocols apply.", age)
}

// GenderConsideration is the generic gender sentence, empty without a gender
func GenderConsideration(gender string) string {
	if gender == "" {
		return ""
	}
	return fmt.Sprintf("Gender-specific factors for %s patients are considered.", gender)
}

// Analysis is the complete result used when a model answered but its
// content could not be parsed. It is more conservative than the rule
// engine's output and is not derived from the symptoms.
func Analysis(age int, gender string) *models.AnalysisResult {
	genderNote := ""
	if gender != "" {
		genderNote = fmt.Sprintf("Standard considerations for %s patients apply.", gender)
	}

	return &models.AnalysisResult{
		PrimaryRecommendation: generalPhysician(
			UnparseableMatch,
			"Unable to fully process symptoms. A general evaluation is recommended as a starting point.",
			[]string{"Requires in-person evaluation"},
		),
		Alternatives: []models.Recommendation{
			{
				Specialty:       UrgentCare,
				MatchPercentage: 60,
				Reasoning:       "If symptoms worsen or persist, consider urgent care for immediate evaluation.",
				UrgencyLevel:    models.UrgencyModerate,
				Conditions:      []string{"Time-sensitive evaluation may be needed"},
				Icon:            string(catalog.IconFor(UrgentCare)),
			},
		},
		UrgencyPercentage:     DefaultUrgencyPercentage,
		EmergencyFlags:        []string{},
		DifferentialDiagnosis: []string{"Further evaluation needed"},
		NextSteps: []string{
			"Schedule an appointment with a healthcare provider",
			"Monitor symptoms and note any changes",
			"Seek emergency care if symptoms suddenly worsen",
		},
		AgeSpecificConsiderations:    fmt.Sprintf("Standard precautions for %d-year-old patients apply.", age),
		GenderSpecificConsiderations: genderNote,
	}
}

func generalPhysician(match int, reasoning string, conditions []string) models.Recommendation {
	gp := catalog.MustLookup(catalog.GeneralPhysician)
	return models.Recommendation{
		Key:             gp.Key,
		Specialty:       gp.Specialty,
		MatchPercentage: match,
		Reasoning:       reasoning,
		UrgencyLevel:    models.UrgencyModerate,
		Conditions:      conditions,
		Description:     gp.Description,
		Icon:            string(gp.Icon),
	}
}

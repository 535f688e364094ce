// Package models holds the result types shared by the rule engine, the AI
// response parser and the HTTP layer.
package models

// Urgency levels, in increasing order of severity
const (
	UrgencyLow       = "low"
	UrgencyModerate  = "moderate"
	UrgencyHigh      = "high"
	UrgencyEmergency = "emergency"
)

// Every Recommendation's match percentage lies in this range
const (
	MinMatchPercentage = 40
	MaxMatchPercentage = 99
)

// ClampMatch bounds p to [MinMatchPercentage, MaxMatchPercentage]
func ClampMatch(p int) int {
	if p < MinMatchPercentage {
		return MinMatchPercentage
	}
	if p > MaxMatchPercentage {
		return MaxMatchPercentage
	}
	return p
}

// Recommendation is one suggested specialist
type Recommendation struct {
	// Key is the catalog key, empty when a model suggested a specialty
	// that is not in the catalog.
	Key             string   `json:"key,omitempty"`
	Specialty       string   `json:"specialty"`
	MatchPercentage int      `json:"matchPercentage"`
	Reasoning       string   `json:"reasoning"`
	UrgencyLevel    string   `json:"urgencyLevel"`
	Conditions      []string `json:"conditions"`
	Description     string   `json:"description,omitempty"`
	Icon            string   `json:"icon,omitempty"`
}

// AnalysisResult is the same shape whether produced by rules or by a model
type AnalysisResult struct {
	PrimaryRecommendation        Recommendation   `json:"primaryRecommendation"`
	Alternatives                 []Recommendation `json:"alternatives"`
	UrgencyPercentage            int              `json:"urgencyPercentage"`
	EmergencyFlags               []string         `json:"emergencyFlags"`
	DifferentialDiagnosis        []string         `json:"differentialDiagnosis"`
	NextSteps                    []string         `json:"nextSteps"`
	AgeSpecificConsiderations    string           `json:"ageSpecificConsiderations"`
	GenderSpecificConsiderations string           `json:"genderSpecificConsiderations"`

	// Reasoning is the rule engine's ordered explanation; empty for model output.
	Reasoning []string `json:"reasoning,omitempty"`
}

// UrgencyLevel is the primary recommendation's level
func (r *AnalysisResult) UrgencyLevel() string {
	return r.PrimaryRecommendation.UrgencyLevel
}

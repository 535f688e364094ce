package recommend

import (
	"fmt"
	"strings"

	"github.com/themobileprof/symptom-checker-be/internal/catalog"
)

var primaryReasons = map[string]string{
	catalog.Rheumatologist:     "Joint pain with morning stiffness suggests a rheumatology evaluation.",
	catalog.Cardiologist:       "Chest pain or palpitations warrant a cardiology evaluation.",
	catalog.Neurologist:        "Your symptoms suggest neurological involvement; a neurologist can evaluate further.",
	catalog.Pulmonologist:      "Respiratory symptoms point to a pulmonology evaluation.",
	catalog.SportsMedicine:     "Injury with muscle pain often benefits from sports medicine.",
	catalog.Orthopedic:         "Injury or swelling indicates an orthopedic assessment may be appropriate.",
	catalog.Gastroenterologist: "Digestive symptoms suggest a gastroenterology evaluation.",
	catalog.Dermatologist:      "Skin symptoms point to a dermatology evaluation.",
	catalog.Ophthalmologist:    "Eye symptoms warrant an ophthalmology evaluation.",
	catalog.ENT:                "Ear, nose, or throat symptoms suggest an ENT evaluation.",
	catalog.Allergist:          "Allergy-related symptoms may need an allergist.",
	catalog.Psychiatrist:       "Mood or anxiety symptoms can benefit from psychiatric evaluation.",
	catalog.SleepSpecialist:    "Sleep issues are best evaluated by a sleep specialist.",
	catalog.Physiatrist:        "Pain or mobility issues often benefit from physiatry (rehabilitation).",
	catalog.InfectiousDisease:  "Fever with respiratory symptoms may need infectious disease evaluation.",
	catalog.Urologist:          "Urinary symptoms warrant a urology evaluation.",
	catalog.Endocrinologist:    "Weight or thirst changes can signal hormonal or metabolic evaluation.",
	catalog.PainManagement:     "Chronic pain may benefit from a pain management specialist.",
	catalog.GeneralPhysician:   "A general physician can provide initial evaluation and refer if needed.",
}

const (
	noMatchReason   = "No specific symptom rule matched; a General Physician is recommended for initial evaluation."
	ruleBasedReason = "Your symptom profile was matched using rule-based logic to suggest the most relevant specialist."
	emergencyReason = "Emergency warning signs were detected (%s). Seek emergency care or call your local emergency number now rather than waiting for a specialist appointment."

	maxNamedOthers = 3
)

// buildReasoning explains the match. The emergency sentence, when present,
// always comes first.
func buildReasoning(matched []string, flags []string) []string {
	var reasoning []string
	if len(flags) > 0 {
		reasoning = append(reasoning, fmt.Sprintf(emergencyReason, strings.Join(flags, ", ")))
	}

	if len(matched) == 0 {
		return append(reasoning, noMatchReason)
	}

	if reason, ok := primaryReasons[matched[0]]; ok {
		reasoning = append(reasoning, reason)
	}
	reasoning = append(reasoning, ruleBasedReason)

	if len(matched) > 1 {
		others := matched[1:]
		if len(others) > maxNamedOthers {
			others = others[:maxNamedOthers]
		}
		reasoning = append(reasoning, fmt.Sprintf("Other possible matches: %s. Consider discussing with your doctor.", strings.Join(others, ", ")))
	}
	return reasoning
}

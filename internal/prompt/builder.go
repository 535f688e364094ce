package prompt

import (
	"fmt"
	"strings"

	"github.com/themobileprof/symptom-checker-be/internal/symptoms"
	"github.com/themobileprof/symptom-checker-be/pkg/llm"
)

// Generation settings for the analysis call
const (
	AnalysisTemperature = 0.3
	AnalysisMaxTokens   = 2048

	FirstMeasuresTemperature = 0.4
	FirstMeasuresMaxTokens   = 400
)

// Builder constructs prompts for the language model
type Builder struct{}

// NewBuilder creates a new prompt builder
func NewBuilder() *Builder {
	return &Builder{}
}

// AnalysisMessages builds the specialist-analysis conversation: a fixed
// system prompt with the age-band heuristics and the JSON schema, then the
// patient's information as the user turn.
func (b *Builder) AnalysisMessages(in symptoms.Input) []llm.ChatMessage {
	return []llm.ChatMessage{
		llm.System(analysisSystemPrompt),
		llm.User(b.patientSummary(in)),
	}
}

// FirstMeasuresMessages builds the home-care conversation
func (b *Builder) FirstMeasuresMessages(symptomsText string, quickSymptoms []string) []llm.ChatMessage {
	var sb strings.Builder
	sb.Grow(512)

	sb.WriteString("A person reports the following symptoms.\n")
	text := strings.TrimSpace(symptomsText)
	if text == "" {
		text = "None provided"
	}
	sb.WriteString(fmt.Sprintf("- Description: %q\n", text))
	sb.WriteString(fmt.Sprintf("- Selected symptoms: %s\n", joinOr(quickSymptoms, "None selected")))
	sb.WriteString("\nSuggest safe first measures they can take at home right now while waiting to see a doctor.")

	return []llm.ChatMessage{
		llm.System(firstMeasuresSystemPrompt),
		llm.User(sb.String()),
	}
}

func (b *Builder) patientSummary(in symptoms.Input) string {
	var sb strings.Builder
	sb.Grow(1024)

	gender := in.Gender
	if gender == "" {
		gender = "Not specified"
	}
	description := strings.TrimSpace(in.Symptoms)
	if description == "" {
		description = "None provided"
	}
	bodyParts := symptoms.FormatBodyParts(in.BodyParts)
	if bodyParts == "" {
		bodyParts = "Not specified"
	}

	sb.WriteString("PATIENT INFORMATION:\n")
	sb.WriteString(fmt.Sprintf("- Age: %d years old (%s)\n", in.Age, AgeBand(in.Age)))
	sb.WriteString(fmt.Sprintf("- Gender: %s\n", gender))
	sb.WriteString(fmt.Sprintf("- Current Medications: %s\n", joinOr(in.Medications, "None reported")))
	sb.WriteString("\n")

	sb.WriteString("REPORTED SYMPTOMS:\n")
	sb.WriteString(fmt.Sprintf("- Free-text description: %q\n", description))
	sb.WriteString(fmt.Sprintf("- Quick-selected symptoms: %s\n", joinOr(in.QuickSymptoms, "None selected")))
	sb.WriteString(fmt.Sprintf("- Affected body parts with symptom types: %s\n", bodyParts))
	if d := symptoms.Describe(in.Symptoms).String(); d != "" {
		sb.WriteString(fmt.Sprintf("- Reported characteristics: %s\n", d))
	}

	return sb.String()
}

// AgeBand names the triage age group for an age in years
func AgeBand(age int) string {
	switch {
	case age <= 12:
		return "child"
	case age <= 19:
		return "teenager"
	case age <= 44:
		return "adult"
	case age <= 64:
		return "middle-aged"
	default:
		return "elderly"
	}
}

func joinOr(items []string, empty string) string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			kept = append(kept, item)
		}
	}
	if len(kept) == 0 {
		return empty
	}
	return strings.Join(kept, ", ")
}

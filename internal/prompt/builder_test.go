package prompt

import (
	"strings"
	"testing"

	"github.com/themobileprof/symptom-checker-be/internal/symptoms"
)

func TestBuilder_AnalysisMessages(t *testing.T) {
	builder := NewBuilder()

	in := symptoms.Input{
		Symptoms:      "Terrible headache since yesterday",
		QuickSymptoms: []string{"Headache", "Dizziness"},
		BodyParts:     []symptoms.BodyPart{{Part: "head", SymptomType: "pain"}},
		Age:           70,
		Gender:        "female",
		Medications:   []string{"warfarin"},
	}

	messages := builder.AnalysisMessages(in)

	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != "system" {
		t.Errorf("Expected first message role 'system', got %q", messages[0].Role)
	}
	if !strings.Contains(messages[0].Content, "For elderly (65+)") {
		t.Error("System prompt should include the age bands")
	}
	if !strings.Contains(messages[0].Content, `"primaryRecommendation"`) {
		t.Error("System prompt should include the JSON schema")
	}

	user := messages[1]
	if user.Role != "user" {
		t.Errorf("Expected last message role 'user', got %q", user.Role)
	}

	wants := []string{
		"- Age: 70 years old (elderly)",
		"- Gender: female",
		"- Current Medications: warfarin",
		`- Free-text description: "Terrible headache since yesterday"`,
		"- Quick-selected symptoms: Headache, Dizziness",
		"- Affected body parts with symptom types: head (pain)",
		"- Reported characteristics: severe severity - started yesterday",
	}
	for _, want := range wants {
		if !strings.Contains(user.Content, want) {
			t.Errorf("patient summary missing %q\n%s", want, user.Content)
		}
	}
}

func TestBuilder_AnalysisMessagesDefaults(t *testing.T) {
	builder := NewBuilder()

	user := builder.AnalysisMessages(symptoms.Input{})[1].Content

	wants := []string{
		"- Gender: Not specified",
		"- Current Medications: None reported",
		`- Free-text description: "None provided"`,
		"- Quick-selected symptoms: None selected",
		"- Affected body parts with symptom types: Not specified",
	}
	for _, want := range wants {
		if !strings.Contains(user, want) {
			t.Errorf("patient summary missing %q", want)
		}
	}
	if strings.Contains(user, "Reported characteristics") {
		t.Error("characteristics line should be omitted when nothing was extracted")
	}
}

func TestBuilder_FirstMeasuresMessages(t *testing.T) {
	builder := NewBuilder()

	messages := builder.FirstMeasuresMessages("sore throat", []string{"Fever", " "})
	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(messages))
	}
	if !strings.Contains(messages[0].Content, "4-5 items, under 200 words") {
		t.Error("system prompt should bound the list length")
	}
	if !strings.Contains(messages[1].Content, `- Description: "sore throat"`) {
		t.Errorf("unexpected user prompt: %s", messages[1].Content)
	}
	if !strings.Contains(messages[1].Content, "- Selected symptoms: Fever\n") {
		t.Errorf("blank labels should be dropped: %s", messages[1].Content)
	}
}

func TestAgeBand(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{0, "child"},
		{12, "child"},
		{13, "teenager"},
		{19, "teenager"},
		{20, "adult"},
		{44, "adult"},
		{45, "middle-aged"},
		{64, "middle-aged"},
		{65, "elderly"},
		{101, "elderly"},
	}
	for _, tt := range tests {
		if got := AgeBand(tt.age); got != tt.want {
			t.Errorf("AgeBand(%d) = %q, want %q", tt.age, got, tt.want)
		}
	}
}

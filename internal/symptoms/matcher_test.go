package symptoms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/themobileprof/symptom-checker-be/internal/catalog"
)

func TestMatcher_Has(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		quick   []string
		symptom string
		want    bool
	}{
		{"quick label exact", "", []string{"Chest Pain"}, "chest pain", true},
		{"quick label extra whitespace", "", []string{"  Morning   Stiffness "}, "morning stiffness", true},
		{"canonical in text", "I have a Headache since noon", nil, "headache", true},
		{"synonym in text", "feeling really tired lately", nil, "fatigue", true},
		{"synonym multiword", "I get pins and needles in my feet", nil, "tingling", true},
		{"absent", "my knee is fine", nil, "chest pain", false},
		{"quick label is not substring matched", "", []string{"chest pains and more"}, "chest pain", false},
		{"empty input", "", nil, "fever", false},
		{"unknown symptom falls back to substring", "hiccups all day", nil, "hiccups", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Match(tt.text, tt.quick)
			assert.Equal(t, tt.want, m.Has(tt.symptom))
		})
	}
}

// Matching is deliberately loose: no word boundaries are enforced.
func TestMatcher_LooseSubstring(t *testing.T) {
	m := Match("I was working feverishly all night", nil)
	assert.True(t, m.Has("fever"))

	// "down" is a low mood synonym, so a cough "that won't go down" has it too
	m = Match("a cough that won't go down", nil)
	assert.True(t, m.Has("low mood"))
}

func TestMatcher_SynonymSymmetry(t *testing.T) {
	for _, entry := range catalog.SynonymSet() {
		for _, phrase := range entry.Phrases {
			m := Match("Lately "+phrase+" happens.", nil)
			assert.True(t, m.Has(entry.Symptom), "phrase %q should imply %q", phrase, entry.Symptom)
		}
	}
}

func TestNewMatcher_BodyParts(t *testing.T) {
	m := NewMatcher(Input{
		BodyParts: []BodyPart{{Part: "Chest", SymptomType: "Pain"}, {Part: "Lower Back", SymptomType: "pain"}},
	})

	assert.True(t, m.Has("chest pain"))
	assert.True(t, m.Has("back pain"))
	assert.Equal(t, []string{"chest pain", "back pain"}, m.Present())
}

func TestMatcher_TextContains(t *testing.T) {
	m := Match("Chronic back pain", []string{"chronic"})
	assert.True(t, m.TextContains("chronic"))

	m = Match("", []string{"chronic"})
	assert.False(t, m.TextContains("chronic"), "labels are not text")
}

func TestMatcher_Present(t *testing.T) {
	m := Match("I have a cough and a fever", []string{"Fatigue"})
	assert.Equal(t, []string{"cough", "fever", "fatigue"}, m.Present())
	assert.Equal(t, 2, m.Count([]string{"fever", "fatigue", "nausea"}))
}

func TestMatcher_Corpus(t *testing.T) {
	m := Match("  Sudden SEIZURE ", []string{"Chest Pain", " "})
	assert.Equal(t, "sudden seizure chest pain", m.Corpus())

	assert.Equal(t, "", Match("", nil).Corpus())
	assert.Equal(t, "", Match(" ", []string{""}).Corpus())
}

func TestInput_EmptyAndClone(t *testing.T) {
	assert.True(t, Input{}.Empty())
	assert.True(t, Input{Symptoms: "  ", QuickSymptoms: []string{" "}}.Empty())
	assert.False(t, Input{QuickSymptoms: []string{"Fever"}}.Empty())

	in := Input{QuickSymptoms: []string{"Fever"}, Medications: []string{"ibuprofen"}}
	cp := in.Clone()
	cp.QuickSymptoms[0] = "Cough"
	assert.Equal(t, "Fever", in.QuickSymptoms[0])
}

func TestFormatBodyParts(t *testing.T) {
	got := FormatBodyParts([]BodyPart{{Part: "head", SymptomType: "pain"}, {Part: "", SymptomType: "x"}, {Part: "knee", SymptomType: "swelling"}})
	assert.Equal(t, "head (pain), knee (swelling)", got)
	assert.Equal(t, "", FormatBodyParts(nil))
}

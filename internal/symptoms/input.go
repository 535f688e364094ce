package symptoms

import (
	"strings"
)

// BodyPart is a body-map selection: where it hurts and how
type BodyPart struct {
	Part        string `json:"part"`
	SymptomType string `json:"symptomType"`
}

// Phrase renders the selection as free text, e.g. {chest, pain} -> "chest pain"
func (b BodyPart) Phrase() string {
	return normalizeLabel(b.Part + " " + b.SymptomType)
}

// Input is one analysis request. Treat it as a value: the engines never
// modify it and Clone gives callers an independent copy.
type Input struct {
	Symptoms      string     `json:"symptoms"`
	QuickSymptoms []string   `json:"quickSymptoms"`
	BodyParts     []BodyPart `json:"bodyParts"`
	Age           int        `json:"age"`
	Gender        string     `json:"gender"`
	Medications   []string   `json:"medications"`
}

// Empty reports whether the input carries no symptom information at all
func (in Input) Empty() bool {
	if strings.TrimSpace(in.Symptoms) != "" {
		return false
	}
	for _, q := range in.QuickSymptoms {
		if strings.TrimSpace(q) != "" {
			return false
		}
	}
	for _, b := range in.BodyParts {
		if strings.TrimSpace(b.Part) != "" {
			return false
		}
	}
	return true
}

// Clone returns a deep copy
func (in Input) Clone() Input {
	out := in
	out.QuickSymptoms = append([]string(nil), in.QuickSymptoms...)
	out.BodyParts = append([]BodyPart(nil), in.BodyParts...)
	out.Medications = append([]string(nil), in.Medications...)
	return out
}

// FormatBodyParts renders selections as "part (type), part (type)"
func FormatBodyParts(parts []BodyPart) string {
	rendered := make([]string, 0, len(parts))
	for _, b := range parts {
		if strings.TrimSpace(b.Part) == "" {
			continue
		}
		rendered = append(rendered, b.Part+" ("+b.SymptomType+")")
	}
	return strings.Join(rendered, ", ")
}

// normalizeLabel lowercases, trims and collapses runs of whitespace
func normalizeLabel(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

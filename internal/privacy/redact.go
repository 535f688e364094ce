// Package privacy strips personal identifiers from free text before it is
// logged or sent to a model provider.
package privacy

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/themobileprof/symptom-checker-be/internal/symptoms"
)

const maxLogLength = 200

var (
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Four groups of four digits
	cardRegex = regexp.MustCompile(`\b\d{4}[-\s]\d{4}[-\s]\d{4}[-\s]\d{4}\b`)

	// Aadhaar numbers never start with 0 or 1
	aadhaarRegex = regexp.MustCompile(`\b[2-9]\d{3}[-\s]?\d{4}[-\s]?\d{4}\b`)

	// Indian mobiles (98765 43210, +91 9876543210) and the
	// 555-123-4567 / (555) 123-4567 family.
	phoneRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?:\+91[-\s]?)?\b[6-9]\d{4}[-\s]?\d{5}\b`),
		regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\(?\b\d{3}\)?[-.\s]?\d{3}[-.\s]\d{4}\b`),
	}

	medicalIDRegex = regexp.MustCompile(`(?i)\b(?:MRN|Medical Record|Patient ID|ABHA(?: ID| number)?)[-:#\s]*[A-Z0-9][A-Z0-9-]{5,}`)
)

// RedactSensitiveData replaces identifiers with bracketed placeholders
func RedactSensitiveData(text string) string {
	text = emailRegex.ReplaceAllString(text, "[EMAIL]")

	// Labelled IDs go first so their digits are not taken for an Aadhaar
	// or phone number. "Patient ID: feeling" is prose, not an identifier.
	text = medicalIDRegex.ReplaceAllStringFunc(text, func(s string) string {
		if strings.IndexFunc(s, unicode.IsDigit) < 0 {
			return s
		}
		return "[MEDICAL_ID]"
	})

	text = cardRegex.ReplaceAllString(text, "[CARD]")
	text = aadhaarRegex.ReplaceAllString(text, "[AADHAAR]")
	for _, re := range phoneRegexes {
		text = re.ReplaceAllString(text, "[PHONE]")
	}

	return text
}

// ContainsPII reports whether RedactSensitiveData would change text
func ContainsPII(text string) bool {
	return RedactSensitiveData(text) != text
}

// SanitizeForLogging redacts and truncates text for log fields
func SanitizeForLogging(text string) string {
	redacted := RedactSensitiveData(text)

	runes := []rune(redacted)
	if len(runes) > maxLogLength {
		return string(runes[:maxLogLength-3]) + "..."
	}
	return redacted
}

// RedactInput returns a copy of in with the free-text fields redacted.
// Quick-select labels and body parts come from fixed lists and are kept.
func RedactInput(in symptoms.Input) symptoms.Input {
	out := in.Clone()
	out.Symptoms = RedactSensitiveData(out.Symptoms)
	for i, med := range out.Medications {
		out.Medications[i] = RedactSensitiveData(med)
	}
	return out
}

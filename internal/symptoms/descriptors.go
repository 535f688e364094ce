package symptoms

import (
	"regexp"
	"strings"
)

// Descriptors are the qualifiers a patient gives alongside symptoms. They
// are passed to the model as context; the rule engine ignores them.
type Descriptors struct {
	Severity  string
	Frequency string
	Onset     string
}

var (
	severeKeywords   = []string{"severe", "really bad", "terrible", "excruciating", "unbearable", "can't handle", "crushing", "worst"}
	moderateKeywords = []string{"moderate", "bad", "uncomfortable", "bothering"}
	mildKeywords     = []string{"mild", "slight", "little", "bit of"}

	frequencyKeywords = []struct {
		label    string
		keywords []string
	}{
		{"constant", []string{"constant", "all the time", "always", "won't stop", "continuous"}},
		{"daily", []string{"daily", "every day", "everyday"}},
		{"frequent", []string{"often", "frequently", "multiple times"}},
		{"occasional", []string{"sometimes", "occasionally", "now and then"}},
		{"once", []string{"once", "one time", "just happened"}},
	}

	// Ordered so the most specific phrasing wins
	onsetPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*days?\s*ago`),
		regexp.MustCompile(`(\d+)\s*weeks?\s*ago`),
		regexp.MustCompile(`(\d+)\s*months?\s*ago`),
		regexp.MustCompile(`(right now|just now|currently)`),
		regexp.MustCompile(`(today|this morning|this afternoon|this evening)`),
		regexp.MustCompile(`yesterday`),
		regexp.MustCompile(`this week`),
		regexp.MustCompile(`last week`),
		regexp.MustCompile(`(few days|couple days|several days)`),
		regexp.MustCompile(`(recently|lately)`),
	}
)

// Describe extracts severity, frequency and onset from free text. Fields
// are empty when the text says nothing about them.
func Describe(text string) Descriptors {
	lower := strings.ToLower(text)
	return Descriptors{
		Severity:  extractSeverity(lower),
		Frequency: extractFrequency(lower),
		Onset:     extractOnset(lower),
	}
}

// String renders the non-empty descriptors for a prompt
func (d Descriptors) String() string {
	var parts []string
	if d.Severity != "" {
		parts = append(parts, d.Severity+" severity")
	}
	if d.Frequency != "" {
		parts = append(parts, d.Frequency)
	}
	if d.Onset != "" {
		parts = append(parts, "started "+d.Onset)
	}
	return strings.Join(parts, " - ")
}

func extractSeverity(message string) string {
	for _, keyword := range severeKeywords {
		if strings.Contains(message, keyword) {
			return "severe"
		}
	}
	for _, keyword := range moderateKeywords {
		if strings.Contains(message, keyword) {
			return "moderate"
		}
	}
	for _, keyword := range mildKeywords {
		if strings.Contains(message, keyword) {
			return "mild"
		}
	}
	return ""
}

func extractFrequency(message string) string {
	for _, f := range frequencyKeywords {
		for _, keyword := range f.keywords {
			if strings.Contains(message, keyword) {
				return f.label
			}
		}
	}
	return ""
}

func extractOnset(message string) string {
	for _, pattern := range onsetPatterns {
		if match := pattern.FindString(message); match != "" {
			return match
		}
	}
	return ""
}

package triage

import (
	"regexp"
	"strings"
)

// EmergencyKeywords are phrases that should send someone to emergency care
// rather than to a specialist appointment. Order is reporting order.
var EmergencyKeywords = []string{
	"chest pain",
	"heart attack",
	"stroke",
	"difficulty breathing",
	"severe bleeding",
	"unconscious",
	"seizure",
	"severe burn",
	"choking",
	"overdose",
	"suicidal",
	"can't breathe",
	"crushing chest",
}

var (
	spaceNormalizer = regexp.MustCompile(`\s+`)
	quoteNormalizer = strings.NewReplacer("’", "'", "‘", "'", "`", "'")
)

// Screener finds emergency keywords in free text
type Screener struct {
	keywords []string
}

// NewScreener creates a screener over EmergencyKeywords
func NewScreener() *Screener {
	return newScreener(EmergencyKeywords)
}

func newScreener(keywords []string) *Screener {
	normalized := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = normalizeText(k); k != "" {
			normalized = append(normalized, k)
		}
	}
	return &Screener{keywords: normalized}
}

// Flags returns every keyword contained in text, in keyword order. The
// result is never nil.
func (s *Screener) Flags(text string) []string {
	normalized := normalizeText(text)
	flags := make([]string, 0)
	if normalized == "" {
		return flags
	}
	for _, keyword := range s.keywords {
		if strings.Contains(normalized, keyword) {
			flags = append(flags, keyword)
		}
	}
	return flags
}

// normalizeText lowercases, folds typographic apostrophes and collapses
// whitespace so "Can’t  breathe" matches "can't breathe".
func normalizeText(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = quoteNormalizer.Replace(text)
	return spaceNormalizer.ReplaceAllString(text, " ")
}

// Package symptoms normalizes free text, quick-select labels and body-map
// selections into the canonical symptom vocabulary.
package symptoms

import (
	"strings"

	"github.com/themobileprof/symptom-checker-be/internal/catalog"
)

// Matcher answers "does this input have symptom s?" for one request.
//
// Matching is loose on purpose: a canonical symptom or any of its synonym
// phrases appearing anywhere in the lowercased text counts, with no word
// boundary check. "feverishly" has fever.
type Matcher struct {
	text     string
	labels   []string
	labelSet map[string]struct{}
}

// NewMatcher builds a matcher from a full request. Body-map selections are
// added to the text as "<part> <symptomType>" phrases.
func NewMatcher(in Input) *Matcher {
	text := strings.ToLower(strings.TrimSpace(in.Symptoms))
	for _, b := range in.BodyParts {
		if phrase := b.Phrase(); phrase != "" {
			if text != "" {
				text += "\n"
			}
			text += phrase
		}
	}
	return newMatcher(text, in.QuickSymptoms)
}

// Match builds a matcher from free text and quick-select labels only
func Match(text string, quick []string) *Matcher {
	return newMatcher(strings.ToLower(strings.TrimSpace(text)), quick)
}

func newMatcher(text string, quick []string) *Matcher {
	m := &Matcher{
		text:     text,
		labels:   make([]string, 0, len(quick)),
		labelSet: make(map[string]struct{}, len(quick)),
	}
	for _, q := range quick {
		label := normalizeLabel(q)
		if label == "" {
			continue
		}
		m.labels = append(m.labels, label)
		m.labelSet[label] = struct{}{}
	}
	return m
}

// Has reports whether the canonical symptom is present, either as a quick
// label, inside the text, or through one of its registered synonyms.
func (m *Matcher) Has(symptom string) bool {
	s := strings.ToLower(symptom)
	if _, ok := m.labelSet[s]; ok {
		return true
	}
	if strings.Contains(m.text, s) {
		return true
	}
	for _, phrase := range catalog.Synonyms(s) {
		if strings.Contains(m.text, phrase) {
			return true
		}
	}
	return false
}

// TextContains checks the free text only, ignoring labels and synonyms
func (m *Matcher) TextContains(word string) bool {
	return strings.Contains(m.text, strings.ToLower(word))
}

// Present lists the canonical symptoms found, in synonym-table order
func (m *Matcher) Present() []string {
	var found []string
	for _, s := range catalog.CanonicalSymptoms() {
		if m.Has(s) {
			found = append(found, s)
		}
	}
	return found
}

// Count returns how many of the given symptoms are present
func (m *Matcher) Count(symptoms []string) int {
	n := 0
	for _, s := range symptoms {
		if m.Has(s) {
			n++
		}
	}
	return n
}

// Corpus is the lowercased text followed by the quick labels, space
// separated. Keyword screens run against it.
func (m *Matcher) Corpus() string {
	if len(m.labels) == 0 {
		return m.text
	}
	return strings.TrimSpace(m.text + " " + strings.Join(m.labels, " "))
}

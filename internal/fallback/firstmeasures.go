package fallback

import (
	"fmt"
	"regexp"
	"strings"
)

// FirstMeasuresDisclaimer always closes the first-measures list
const FirstMeasuresDisclaimer = "These are general tips only. Always consult a doctor for proper diagnosis and treatment."

type tipRule struct {
	pattern *regexp.Regexp
	tip     string
}

// Evaluated in order; every matching rule contributes its tip.
var tipRules = []tipRule{
	{
		regexp.MustCompile(`\b(chest pain|shortness of breath|severe pain)\b`),
		"If chest pain or severe shortness of breath is present, seek emergency care or call local emergency number.",
	},
	{
		regexp.MustCompile(`\b(fever|fatigue|tired)\b`),
		"Rest and stay hydrated. Monitor temperature; if high or prolonged, see a doctor.",
	},
	{
		regexp.MustCompile(`\b(joint pain|morning stiffness|arthritis)\b`),
		"Avoid strenuous activity on affected joints. Gentle movement may help stiffness. Apply warmth if it eases pain.",
	},
	{
		regexp.MustCompile(`\b(headache|dizziness|numbness|tingling)\b`),
		"Rest in a quiet, dim room. Avoid driving or operating machinery until symptoms improve.",
	},
	{
		regexp.MustCompile(`\b(cough|shortness of breath)\b`),
		"Stay hydrated, avoid smoke and dust. If breathing difficulty worsens, seek medical help.",
	},
	{
		regexp.MustCompile(`\b(nausea|abdominal pain|stomach)\b`),
		"Eat light, bland foods. Sip fluids. Avoid heavy or spicy meals until symptoms ease.",
	},
	{
		regexp.MustCompile(`\b(injury|swelling|sprain)\b`),
		"Rest, ice, compress, and elevate (RICE) the affected area. Avoid putting weight on it if severe.",
	},
	{
		regexp.MustCompile(`\b(skin rash|itching)\b`),
		"Keep the area clean and dry. Avoid scratching. Consider an over-the-counter antihistamine if appropriate.",
	},
	{
		regexp.MustCompile(`\b(anxiety|low mood|sleep)\b`),
		"Maintain a regular sleep schedule. Limit caffeine and screens before bed. Reach out to someone you trust.",
	},
}

var defaultTips = []string{
	"Rest and stay hydrated.",
	"Note down when symptoms started and what makes them better or worse for your doctor.",
	"If symptoms worsen or new ones appear, contact a healthcare provider.",
}

// FirstMeasuresTips returns the tips for the given symptoms, disclaimer
// last. The list is never empty.
func FirstMeasuresTips(symptomsText string, quickSymptoms []string) []string {
	text := strings.ToLower(symptomsText) + " " + strings.ToLower(strings.Join(quickSymptoms, " "))

	var tips []string
	for _, rule := range tipRules {
		if rule.pattern.MatchString(text) {
			tips = append(tips, rule.tip)
		}
	}
	if len(tips) == 0 {
		tips = append(tips, defaultTips...)
	}
	return append(tips, FirstMeasuresDisclaimer)
}

// FirstMeasures renders FirstMeasuresTips as a numbered list separated by
// blank lines.
func FirstMeasures(symptomsText string, quickSymptoms []string) string {
	tips := FirstMeasuresTips(symptomsText, quickSymptoms)
	lines := make([]string, len(tips))
	for i, tip := range tips {
		lines[i] = fmt.Sprintf("%d. %s", i+1, tip)
	}
	return strings.Join(lines, "\n\n")
}

// Package triage screens symptom text for emergencies and maps urgency
// levels to the percentages shown on the urgency meter.
package triage

import (
	"strings"

	"github.com/themobileprof/symptom-checker-be/internal/models"
)

var levelPercentages = map[string]int{
	models.UrgencyLow:       40,
	models.UrgencyModerate:  60,
	models.UrgencyHigh:      85,
	models.UrgencyEmergency: 95,
}

// Percentage returns the meter value for a level, 0 for unknown levels
func Percentage(level string) int {
	return levelPercentages[level]
}

// ParseLevel normalizes a level string. ok is false for anything that is
// not one of low, moderate, high or emergency.
func ParseLevel(s string) (level string, ok bool) {
	l := strings.ToLower(strings.TrimSpace(s))
	switch l {
	case "critical":
		return models.UrgencyEmergency, true
	case "medium":
		return models.UrgencyModerate, true
	}
	if _, known := levelPercentages[l]; known {
		return l, true
	}
	return "", false
}

// LevelOrModerate is ParseLevel with moderate as the fallback
func LevelOrModerate(s string) string {
	if l, ok := ParseLevel(s); ok {
		return l
	}
	return models.UrgencyModerate
}

// ClampPercentage bounds an urgency percentage to [0, 100]
func ClampPercentage(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

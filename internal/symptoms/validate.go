package symptoms

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Input limits
const (
	MaxSymptomsLength = 5000
	MaxListItems      = 50
	MaxAge            = 130
)

// ErrInvalidInput is wrapped by every Validate failure
var ErrInvalidInput = errors.New("invalid symptom input")

// Validate rejects input that is malformed rather than merely empty. An
// input without any symptoms is valid.
func (in Input) Validate() error {
	if in.Age < 0 || in.Age > MaxAge {
		return fmt.Errorf("%w: age must be between 0 and %d", ErrInvalidInput, MaxAge)
	}
	if utf8.RuneCountInString(in.Symptoms) > MaxSymptomsLength {
		return fmt.Errorf("%w: symptoms must be at most %d characters", ErrInvalidInput, MaxSymptomsLength)
	}
	if len(in.QuickSymptoms) > MaxListItems || len(in.BodyParts) > MaxListItems || len(in.Medications) > MaxListItems {
		return fmt.Errorf("%w: at most %d items per list", ErrInvalidInput, MaxListItems)
	}
	return nil
}

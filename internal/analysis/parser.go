package analysis

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/themobileprof/symptom-checker-be/internal/catalog"
	"github.com/themobileprof/symptom-checker-be/internal/fallback"
	"github.com/themobileprof/symptom-checker-be/internal/models"
	"github.com/themobileprof/symptom-checker-be/internal/triage"
	"github.com/themobileprof/symptom-checker-be/pkg/llm"
)

// MaxAlternatives caps the alternatives kept from a model answer
const MaxAlternatives = 4

// percent accepts 85, 85.5, "85" and "85%"
type percent float64

func (p *percent) UnmarshalJSON(data []byte) error {
	if s, err := strconv.Unquote(string(data)); err == nil {
		data = []byte(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*p = percent(f)
	return nil
}

func (p *percent) rounded() int {
	if p == nil {
		return 0
	}
	return int(math.Round(float64(*p)))
}

type rawRecommendation struct {
	Specialty       string
	MatchPercentage *percent
	Reasoning       string
	UrgencyLevel    string
	Conditions      []string
}

type rawAnalysis struct {
	PrimaryRecommendation        *rawRecommendation
	Alternatives                 []rawRecommendation
	UrgencyPercentage            *percent
	EmergencyFlags               []string
	DifferentialDiagnosis        []string
	NextSteps                    []string
	AgeSpecificConsiderations    string
	GenderSpecificConsiderations string
}

// fields is one JSON object, decoded one member at a time so a mistyped
// member only loses itself.
type fields map[string]json.RawMessage

func objectFields(data []byte) (fields, bool) {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil || f == nil {
		return nil, false
	}
	return f, true
}

func (f fields) stringField(key string) string {
	var s string
	if err := json.Unmarshal(f[key], &s); err != nil {
		return ""
	}
	return s
}

// stringList keeps the string elements of an array member and drops the rest
func (f fields) stringList(key string) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(f[key], &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if json.Unmarshal(item, &s) == nil {
			out = append(out, s)
		}
	}
	return out
}

func (f fields) percentField(key string) *percent {
	data, ok := f[key]
	if !ok {
		return nil
	}
	var p percent
	if err := json.Unmarshal(data, &p); err != nil {
		return nil
	}
	return &p
}

func (f fields) recommendation(key string) *rawRecommendation {
	obj, ok := objectFields(f[key])
	if !ok {
		return nil
	}
	rec := obj.toRawRecommendation()
	return &rec
}

func (f fields) recommendations(key string) []rawRecommendation {
	var items []json.RawMessage
	if err := json.Unmarshal(f[key], &items); err != nil {
		return nil
	}
	out := make([]rawRecommendation, 0, len(items))
	for _, item := range items {
		if obj, ok := objectFields(item); ok {
			out = append(out, obj.toRawRecommendation())
		}
	}
	return out
}

func (f fields) toRawRecommendation() rawRecommendation {
	return rawRecommendation{
		Specialty:       f.stringField("specialty"),
		MatchPercentage: f.percentField("matchPercentage"),
		Reasoning:       f.stringField("reasoning"),
		UrgencyLevel:    f.stringField("urgencyLevel"),
		Conditions:      f.stringList("conditions"),
	}
}

func (f fields) toRawAnalysis() *rawAnalysis {
	return &rawAnalysis{
		PrimaryRecommendation:        f.recommendation("primaryRecommendation"),
		Alternatives:                 f.recommendations("alternatives"),
		UrgencyPercentage:            f.percentField("urgencyPercentage"),
		EmergencyFlags:               f.stringList("emergencyFlags"),
		DifferentialDiagnosis:        f.stringList("differentialDiagnosis"),
		NextSteps:                    f.stringList("nextSteps"),
		AgeSpecificConsiderations:    f.stringField("ageSpecificConsiderations"),
		GenderSpecificConsiderations: f.stringField("genderSpecificConsiderations"),
	}
}

// ParseResponse turns model text into an AnalysisResult. It never fails:
// missing or mistyped fields get defaults, and text without a JSON object
// yields fallback.Analysis. ok reports whether the text held an object.
func ParseResponse(text string, age int, gender string) (*models.AnalysisResult, bool) {
	raw, ok := decode(text)
	if !ok {
		return fallback.Analysis(age, gender), false
	}
	return raw.normalize(age, gender), true
}

// decode tries the fence-stripped text, then the outermost {...} span
// for answers with prose around the object.
func decode(text string) (*rawAnalysis, bool) {
	body := llm.StripCodeFence(text)

	if raw, ok := decodeObject(body); ok {
		return raw, true
	}

	start := strings.IndexByte(body, '{')
	end := strings.LastIndexByte(body, '}')
	if start < 0 || end <= start {
		return nil, false
	}
	return decodeObject(body[start : end+1])
}

func decodeObject(s string) (*rawAnalysis, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") {
		return nil, false
	}
	// Decode reads the first value only, so trailing prose is ignored.
	var f fields
	if err := json.NewDecoder(strings.NewReader(s)).Decode(&f); err != nil || f == nil {
		return nil, false
	}
	return f.toRawAnalysis(), true
}

func (r *rawAnalysis) normalize(age int, gender string) *models.AnalysisResult {
	result := &models.AnalysisResult{
		PrimaryRecommendation:        fallback.MissingPrimary(),
		Alternatives:                 []models.Recommendation{},
		UrgencyPercentage:            fallback.DefaultUrgencyPercentage,
		EmergencyFlags:               nonBlank(r.EmergencyFlags),
		DifferentialDiagnosis:        nonBlank(r.DifferentialDiagnosis),
		NextSteps:                    nonBlank(r.NextSteps),
		AgeSpecificConsiderations:    strings.TrimSpace(r.AgeSpecificConsiderations),
		GenderSpecificConsiderations: strings.TrimSpace(r.GenderSpecificConsiderations),
	}

	if r.PrimaryRecommendation != nil && strings.TrimSpace(r.PrimaryRecommendation.Specialty) != "" {
		result.PrimaryRecommendation = r.PrimaryRecommendation.toRecommendation(fallback.MissingPrimaryMatch)
	}

	for _, alt := range r.Alternatives {
		if len(result.Alternatives) == MaxAlternatives {
			break
		}
		if strings.TrimSpace(alt.Specialty) == "" {
			continue
		}
		result.Alternatives = append(result.Alternatives, alt.toRecommendation(fallback.MissingAlternativeMatch))
	}

	// Zero is treated as missing, like an absent field.
	if p := r.UrgencyPercentage.rounded(); p != 0 {
		result.UrgencyPercentage = triage.ClampPercentage(p)
	}
	if len(result.NextSteps) == 0 {
		result.NextSteps = fallback.DefaultNextSteps()
	}
	if result.AgeSpecificConsiderations == "" {
		result.AgeSpecificConsiderations = fallback.AgeConsideration(age)
	}
	if result.GenderSpecificConsiderations == "" {
		result.GenderSpecificConsiderations = fallback.GenderConsideration(gender)
	}

	return result
}

func (r rawRecommendation) toRecommendation(defaultMatch int) models.Recommendation {
	rec := models.Recommendation{
		Specialty:       strings.TrimSpace(r.Specialty),
		MatchPercentage: defaultMatch,
		Reasoning:       strings.TrimSpace(r.Reasoning),
		UrgencyLevel:    triage.LevelOrModerate(r.UrgencyLevel),
		Conditions:      nonBlank(r.Conditions),
	}
	if r.MatchPercentage != nil {
		rec.MatchPercentage = models.ClampMatch(r.MatchPercentage.rounded())
	}

	rec.Icon = string(catalog.IconFor(rec.Specialty))
	if key, ok := catalog.KeyForSpecialty(rec.Specialty); ok {
		s := catalog.MustLookup(key)
		rec.Key = key
		rec.Specialty = s.Specialty
		rec.Description = s.Description
	}
	return rec
}

func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

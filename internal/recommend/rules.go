package recommend

import (
	"github.com/themobileprof/symptom-checker-be/internal/catalog"
	"github.com/themobileprof/symptom-checker-be/internal/symptoms"
)

// Rule adds Specialist to the matched list when it fires. A rule fires
// when every All symptom is present, at least one Any symptom is present
// (if Any is set) and TextKeyword appears in the free text (if set).
type Rule struct {
	Name        string
	Specialist  string
	All         []string
	Any         []string
	TextKeyword string
}

// Fires evaluates the rule against one request's matcher
func (r Rule) Fires(m *symptoms.Matcher) bool {
	if r.TextKeyword != "" && !m.TextContains(r.TextKeyword) {
		return false
	}
	for _, s := range r.All {
		if !m.Has(s) {
			return false
		}
	}
	if len(r.Any) == 0 {
		return true
	}
	for _, s := range r.Any {
		if m.Has(s) {
			return true
		}
	}
	return false
}

// Rules is the priority list. Order matters: the first rule that fires
// picks the primary specialist, and a specialist keeps the position of the
// first rule that added it.
var Rules = []Rule{
	{Name: "joint pain with morning stiffness", Specialist: catalog.Rheumatologist, All: []string{"joint pain", "morning stiffness"}},
	{Name: "chest pain or palpitations", Specialist: catalog.Cardiologist, Any: []string{"chest pain", "heart palpitations"}},
	{Name: "headache with numbness or tingling", Specialist: catalog.Neurologist, All: []string{"headache"}, Any: []string{"numbness", "tingling"}},
	{Name: "cough or shortness of breath", Specialist: catalog.Pulmonologist, Any: []string{"cough", "shortness of breath"}},
	{Name: "injury with muscle pain", Specialist: catalog.SportsMedicine, All: []string{"injury", "muscle pain"}},
	{Name: "injury or swelling", Specialist: catalog.Orthopedic, Any: []string{"injury", "swelling"}},
	{Name: "nausea or abdominal pain", Specialist: catalog.Gastroenterologist, Any: []string{"nausea", "abdominal pain"}},
	{Name: "skin rash or itching", Specialist: catalog.Dermatologist, Any: []string{"skin rash", "itching"}},
	{Name: "eye pain or blurred vision", Specialist: catalog.Ophthalmologist, Any: []string{"eye pain", "blurred vision"}},
	{Name: "sore throat or ear pain", Specialist: catalog.ENT, Any: []string{"sore throat", "ear pain"}},
	{Name: "allergies or sneezing", Specialist: catalog.Allergist, Any: []string{"allergies", "sneezing"}},
	{Name: "anxiety or low mood", Specialist: catalog.Psychiatrist, Any: []string{"anxiety", "low mood"}},
	{Name: "sleep problems", Specialist: catalog.SleepSpecialist, All: []string{"sleep problems"}},
	{Name: "back pain", Specialist: catalog.Physiatrist, All: []string{"back pain"}},
	{Name: "dizziness", Specialist: catalog.Neurologist, All: []string{"dizziness"}},
	{Name: "numbness or tingling", Specialist: catalog.Neurologist, Any: []string{"numbness", "tingling"}},
	{Name: "fever with cough", Specialist: catalog.InfectiousDisease, All: []string{"fever", "cough"}},
	{Name: "fever or fatigue", Specialist: catalog.GeneralPhysician, Any: []string{"fever", "fatigue"}},
	{Name: "urinary issues", Specialist: catalog.Urologist, All: []string{"urinary issues"}},
	{Name: "weight changes or excessive thirst", Specialist: catalog.Endocrinologist, Any: []string{"weight changes", "excessive thirst"}},
	{Name: "muscle pain", Specialist: catalog.Physiatrist, All: []string{"muscle pain"}},
	{Name: "chronic pain", Specialist: catalog.PainManagement, Any: []string{"back pain", "muscle pain", "joint pain"}, TextKeyword: "chronic"},
}

// matchSpecialists runs every rule and returns the distinct specialists in
// first-added order.
func matchSpecialists(m *symptoms.Matcher) []string {
	var matched []string
	seen := make(map[string]bool)
	for _, rule := range Rules {
		if seen[rule.Specialist] || !rule.Fires(m) {
			continue
		}
		seen[rule.Specialist] = true
		matched = append(matched, rule.Specialist)
	}
	return matched
}

package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Scheme is a government health scheme whose coverage is expressed per
// specialist: conditions treated by a covered specialist are typically
// covered by the scheme.
type Scheme struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	ShortName          string   `json:"shortName"`
	Description        string   `json:"description"`
	EligibilitySummary string   `json:"eligibilitySummary"`
	CoveredSpecialists []string `json:"coveredSpecialists"`
	OfficialURL        string   `json:"officialUrl,omitempty"`
}

// StateScheme is a scheme offered nationally or by one state
type StateScheme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ShortName   string `json:"shortName"`
	State       string `json:"state"`
	Description string `json:"description"`
	Eligibility string `json:"eligibility"`
	Coverage    string `json:"coverage"`
	OfficialURL string `json:"officialUrl,omitempty"`
	IsNational  bool   `json:"isNational"`
}

var schemes = []Scheme{
	{
		ID:                 "ayushman-bharat",
		Name:               "Ayushman Bharat Pradhan Mantri Jan Arogya Yojana",
		ShortName:          "AB-PMJAY",
		Description:        "National health protection scheme providing cashless coverage for secondary and tertiary care hospitalization.",
		EligibilitySummary: "Eligible families (based on SECC) get coverage of ₹5 lakh per family per year. Check your eligibility on the official portal.",
		CoveredSpecialists: []string{
			Rheumatologist, Cardiologist, Neurologist, Pulmonologist, Orthopedic,
			Gastroenterologist, Dermatologist, Ophthalmologist, ENT, Urologist,
			Psychiatrist, InfectiousDisease, GeneralPhysician, SportsMedicine,
			Physiatrist, PainManagement, Endocrinologist, Allergist, SleepSpecialist,
		},
		OfficialURL: "https://pmjay.gov.in",
	},
	{
		ID:                 "cghs",
		Name:               "Central Government Health Scheme",
		ShortName:          "CGHS",
		Description:        "Health coverage for central government employees and pensioners including OPD and hospitalization.",
		EligibilitySummary: "Central govt. employees, pensioners, and their dependents. Coverage includes specialist consultations and procedures.",
		CoveredSpecialists: []string{
			Rheumatologist, Cardiologist, Neurologist, Pulmonologist, Orthopedic,
			Gastroenterologist, Dermatologist, Ophthalmologist, ENT, Urologist,
			Psychiatrist, Endocrinologist, GeneralPhysician, Physiatrist,
			PainManagement, Allergist, SleepSpecialist, InfectiousDisease, SportsMedicine,
		},
		OfficialURL: "https://cghs.gov.in",
	},
	{
		ID:                 "state-schemes",
		Name:               "State Health Insurance Schemes",
		ShortName:          "State schemes",
		Description:        "Various state-run health insurance schemes (e.g. MJPJAY, YSR Aarogyasri) offering coverage for hospitalization and surgeries.",
		EligibilitySummary: "Eligibility varies by state. Often covers BPL and other defined categories. Check your state health department.",
		CoveredSpecialists: []string{
			Rheumatologist, Cardiologist, Neurologist, Pulmonologist, Orthopedic,
			Gastroenterologist, Ophthalmologist, ENT, Urologist, GeneralPhysician,
			InfectiousDisease,
		},
	},
}

// SchemesForSpecialist returns the schemes that cover a specialist key
func SchemesForSpecialist(key string) []Scheme {
	var out []Scheme
	for _, s := range schemes {
		for _, covered := range s.CoveredSpecialists {
			if covered == key {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// StateSchemes returns the seed table of national and state schemes
func StateSchemes() []StateScheme {
	out := make([]StateScheme, len(stateSchemes))
	copy(out, stateSchemes)
	return out
}

// ResolveState maps a city or state name to a state. Unknown locations are
// returned trimmed, as given.
func ResolveState(location string) string {
	loc := strings.ToLower(strings.TrimSpace(location))
	if state, ok := cityStates[loc]; ok {
		return state
	}
	return strings.TrimSpace(location)
}

// SchemesForLocation returns national schemes followed by schemes of the
// state the location resolves to, each group sorted by name.
func SchemesForLocation(location string) []StateScheme {
	state := ResolveState(location)

	var national, local []StateScheme
	for _, s := range stateSchemes {
		switch {
		case s.IsNational:
			national = append(national, s)
		case state != "" && strings.EqualFold(s.State, state):
			local = append(local, s)
		}
	}
	sortByName(national)
	sortByName(local)
	return append(national, local...)
}

func sortByName(s []StateScheme) {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Name < s[j].Name })
}

// States lists every state with at least one state scheme, sorted
func States() []string {
	seen := make(map[string]bool)
	var states []string
	for _, s := range stateSchemes {
		if s.IsNational || seen[s.State] {
			continue
		}
		seen[s.State] = true
		states = append(states, s.State)
	}
	sort.Strings(states)
	return states
}

// PortabilityInfo explains which schemes follow a patient travelling from
// one state to another.
func PortabilityInfo(fromState, toState string) string {
	if strings.EqualFold(strings.TrimSpace(fromState), strings.TrimSpace(toState)) {
		return "You are within your home state. All your enrolled schemes apply."
	}

	return fmt.Sprintf(`When traveling from %[1]s to %[2]s:

• **Ayushman Bharat (PMJAY)** is portable across all states. Use your Ayushman card at any empanelled hospital in %[2]s.

• **State schemes** like those from %[1]s may NOT be directly usable in %[2]s. You may need to:
  1. Get treatment at empanelled hospitals only
  2. Carry pre-authorization documents
  3. File for reimbursement after returning

• For planned medical travel, contact your scheme's helpline before traveling.`, fromState, toState)
}

// Package catalog holds the static reference tables the checker matches
// against: specialist profiles, the symptom synonym set and government
// health schemes. Everything here is read-only after package init.
package catalog

// Icon is a display category for a specialist. Clients map it to artwork.
type Icon string

const (
	IconBone          Icon = "bone"
	IconHeart         Icon = "heart"
	IconBrain         Icon = "brain"
	IconWind          Icon = "wind"
	IconDumbbell      Icon = "dumbbell"
	IconPill          Icon = "pill"
	IconSparkles      Icon = "sparkles"
	IconEye           Icon = "eye"
	IconEar           Icon = "ear"
	IconSmile         Icon = "smile"
	IconMoon          Icon = "moon"
	IconActivity      Icon = "activity"
	IconFlask         Icon = "flask-conical"
	IconDroplets      Icon = "droplets"
	IconScale         Icon = "scale"
	IconStethoscope   Icon = "stethoscope"
	IconAlertTriangle Icon = "alert-triangle"
)

// Specialist keys in catalog order
const (
	Rheumatologist     = "Rheumatologist"
	Cardiologist       = "Cardiologist"
	Neurologist        = "Neurologist"
	Pulmonologist      = "Pulmonologist"
	SportsMedicine     = "Sports Medicine"
	Orthopedic         = "Orthopedic"
	Gastroenterologist = "Gastroenterologist"
	Dermatologist      = "Dermatologist"
	Ophthalmologist    = "Ophthalmologist"
	ENT                = "ENT"
	Allergist          = "Allergist"
	Psychiatrist       = "Psychiatrist"
	SleepSpecialist    = "Sleep Specialist"
	Physiatrist        = "Physiatrist"
	InfectiousDisease  = "Infectious Disease"
	Urologist          = "Urologist"
	Endocrinologist    = "Endocrinologist"
	PainManagement     = "Pain Management"
	GeneralPhysician   = "General Physician"
)

// Specialist is a static specialist profile
type Specialist struct {
	Key         string   `json:"key"`
	Specialty   string   `json:"specialty"`
	Icon        Icon     `json:"icon"`
	Description string   `json:"description"`
	Symptoms    []string `json:"symptoms"`
	Conditions  []string `json:"conditions"`

	// BonusKeyword, when present in the free text, counts as one extra
	// defining symptom for scoring.
	BonusKeyword string `json:"-"`
}

// TotalSymptoms is the scoring denominator
func (s Specialist) TotalSymptoms() int {
	n := len(s.Symptoms)
	if s.BonusKeyword != "" {
		n++
	}
	return n
}

var specialists = []Specialist{
	{
		Key:         Rheumatologist,
		Specialty:   "Rheumatologist",
		Icon:        IconBone,
		Description: "Joint pain and morning stiffness suggest musculoskeletal or autoimmune conditions. A rheumatologist specializes in arthritis, lupus, and similar disorders.",
		Symptoms:    []string{"joint pain", "morning stiffness"},
		Conditions:  []string{"rheumatoid arthritis", "osteoarthritis", "lupus", "joint disorders", "ankylosing spondylitis"},
	},
	{
		Key:         Cardiologist,
		Specialty:   "Cardiologist",
		Icon:        IconHeart,
		Description: "Chest pain or heart palpitations warrant a heart evaluation. A cardiologist specializes in cardiovascular conditions and can rule out serious causes.",
		Symptoms:    []string{"chest pain", "heart palpitations"},
		Conditions:  []string{"heart disease", "hypertension", "arrhythmia", "heart failure", "angina"},
	},
	{
		Key:         Neurologist,
		Specialty:   "Neurologist",
		Icon:        IconBrain,
		Description: "Headache, numbness, tingling, or dizziness can point to nervous system involvement. A neurologist specializes in brain, spine, and nerve disorders.",
		Symptoms:    []string{"headache", "numbness", "tingling", "dizziness"},
		Conditions:  []string{"migraine", "epilepsy", "stroke", "neuropathy", "multiple sclerosis", "Parkinson's"},
	},
	{
		Key:         Pulmonologist,
		Specialty:   "Pulmonologist",
		Icon:        IconWind,
		Description: "Cough or shortness of breath suggests respiratory involvement. A pulmonologist specializes in lungs and breathing disorders.",
		Symptoms:    []string{"cough", "shortness of breath"},
		Conditions:  []string{"asthma", "COPD", "pneumonia", "bronchitis", "sleep apnea"},
	},
	{
		Key:         SportsMedicine,
		Specialty:   "Sports Medicine",
		Icon:        IconDumbbell,
		Description: "Injury with muscle pain often benefits from sports medicine. This niche specialty focuses on exercise-related injuries and recovery.",
		Symptoms:    []string{"injury", "muscle pain"},
		Conditions:  []string{"sports injuries", "muscle strains", "ligament tears", "rehabilitation"},
	},
	{
		Key:         Orthopedic,
		Specialty:   "Orthopedic",
		Icon:        IconBone,
		Description: "Injury or swelling may involve bones, joints, or soft tissue. An orthopedic specialist can evaluate and recommend treatment.",
		Symptoms:    []string{"injury", "swelling"},
		Conditions:  []string{"fractures", "joint replacement", "arthritis", "tendonitis", "back and joint pain"},
	},
	{
		Key:         Gastroenterologist,
		Specialty:   "Gastroenterologist",
		Icon:        IconPill,
		Description: "Nausea or abdominal pain suggests digestive system involvement. A gastroenterologist specializes in gut, liver, and digestive disorders.",
		Symptoms:    []string{"nausea", "abdominal pain"},
		Conditions:  []string{"IBS", "GERD", "liver disease", "inflammatory bowel disease", "digestive disorders"},
	},
	{
		Key:         Dermatologist,
		Specialty:   "Dermatologist",
		Icon:        IconSparkles,
		Description: "Skin rash or itching points to skin conditions. A dermatologist specializes in skin, hair, and nail disorders.",
		Symptoms:    []string{"skin rash", "itching"},
		Conditions:  []string{"skin infections", "eczema", "psoriasis", "acne", "skin cancer screening"},
	},
	{
		Key:         Ophthalmologist,
		Specialty:   "Ophthalmologist",
		Icon:        IconEye,
		Description: "Eye pain or blurred vision warrants an eye exam. An ophthalmologist specializes in vision and eye diseases.",
		Symptoms:    []string{"eye pain", "blurred vision"},
		Conditions:  []string{"cataract", "glaucoma", "diabetic retinopathy", "vision disorders"},
	},
	{
		Key:         ENT,
		Specialty:   "ENT (Otolaryngologist)",
		Icon:        IconEar,
		Description: "Sore throat or ear pain suggests ear, nose, or throat involvement. An ENT specialist treats conditions in these areas.",
		Symptoms:    []string{"sore throat", "ear pain"},
		Conditions:  []string{"sinusitis", "hearing loss", "tonsillitis", "ear infections", "sleep apnea"},
	},
	{
		Key:         Allergist,
		Specialty:   "Allergist / Immunologist",
		Icon:        IconWind,
		Description: "Allergies or sneezing may need allergy testing and management. An allergist specializes in allergic and immune conditions.",
		Symptoms:    []string{"allergies", "sneezing"},
		Conditions:  []string{"allergic rhinitis", "asthma", "food allergies", "eczema", "anaphylaxis"},
	},
	{
		Key:         Psychiatrist,
		Specialty:   "Psychiatrist",
		Icon:        IconSmile,
		Description: "Anxiety or low mood can benefit from mental health evaluation. A psychiatrist specializes in emotional and behavioral health.",
		Symptoms:    []string{"anxiety", "low mood"},
		Conditions:  []string{"depression", "anxiety", "bipolar disorder", "PTSD", "schizophrenia"},
	},
	{
		Key:         SleepSpecialist,
		Specialty:   "Sleep Specialist",
		Icon:        IconMoon,
		Description: "Sleep problems affect overall health. A sleep specialist evaluates sleep disorders and can recommend testing or treatment.",
		Symptoms:    []string{"sleep problems"},
		Conditions:  []string{"insomnia", "sleep apnea", "narcolepsy", "restless leg syndrome"},
	},
	{
		Key:         Physiatrist,
		Specialty:   "Physiatrist (PM&R)",
		Icon:        IconActivity,
		Description: "Back pain or muscle pain often benefits from rehabilitation. A physiatrist specializes in physical medicine and rehabilitation.",
		Symptoms:    []string{"back pain", "muscle pain"},
		Conditions:  []string{"chronic pain", "rehabilitation", "spinal cord injury", "stroke rehabilitation"},
	},
	{
		Key:         InfectiousDisease,
		Specialty:   "Infectious Disease Specialist",
		Icon:        IconFlask,
		Description: "Prolonged fever with respiratory symptoms may need infectious disease evaluation. This niche specialty focuses on complex infections.",
		Symptoms:    []string{"fever", "cough"},
		Conditions:  []string{"tuberculosis", "HIV", "hepatitis", "complex infections", "travel medicine"},
	},
	{
		Key:         Urologist,
		Specialty:   "Urologist",
		Icon:        IconDroplets,
		Description: "Urinary issues warrant a urology evaluation. A urologist specializes in urinary tract and related conditions.",
		Symptoms:    []string{"urinary issues"},
		Conditions:  []string{"kidney stones", "UTI", "benign prostate enlargement", "urological cancers"},
	},
	{
		Key:         Endocrinologist,
		Specialty:   "Endocrinologist",
		Icon:        IconScale,
		Description: "Weight changes or excessive thirst can signal hormone or metabolic issues. An endocrinologist specializes in diabetes, thyroid, and hormones.",
		Symptoms:    []string{"weight changes", "excessive thirst"},
		Conditions:  []string{"diabetes", "thyroid disorders", "hormone imbalances", "osteoporosis"},
	},
	{
		Key:          PainManagement,
		Specialty:    "Pain Management Specialist",
		Icon:         IconActivity,
		Description:  "Chronic pain may benefit from a pain specialist. This niche focuses on comprehensive pain evaluation and treatment.",
		Symptoms:     []string{"back pain", "muscle pain", "joint pain"},
		Conditions:   []string{"chronic pain", "fibromyalgia", "neuropathic pain", "cancer pain"},
		BonusKeyword: "chronic",
	},
	{
		Key:         GeneralPhysician,
		Specialty:   "General Physician",
		Icon:        IconStethoscope,
		Description: "Fever, fatigue, or general symptoms are a good fit for a general physician. They can provide initial evaluation and refer to a specialist if needed.",
		Symptoms:    []string{"fever", "fatigue"},
		Conditions:  []string{"general health check-up", "fever", "infections", "chronic disease management"},
	},
}

var specialistIndex = func() map[string]int {
	idx := make(map[string]int, len(specialists))
	for i, s := range specialists {
		idx[s.Key] = i
	}
	return idx
}()

// Specialists returns every profile in catalog order. The slice is a copy.
func Specialists() []Specialist {
	out := make([]Specialist, len(specialists))
	copy(out, specialists)
	return out
}

// Keys returns every specialist key in catalog order
func Keys() []string {
	keys := make([]string, len(specialists))
	for i, s := range specialists {
		keys[i] = s.Key
	}
	return keys
}

// Lookup finds a specialist by key
func Lookup(key string) (Specialist, bool) {
	i, ok := specialistIndex[key]
	if !ok {
		return Specialist{}, false
	}
	return specialists[i], true
}

// MustLookup is Lookup for keys that are known to exist, such as the
// exported key constants. It panics on an unknown key.
func MustLookup(key string) Specialist {
	s, ok := Lookup(key)
	if !ok {
		panic("catalog: unknown specialist " + key)
	}
	return s
}

// IconFor returns the icon for a specialty as returned by a model. Known
// keys and display names map to their icon; anything else gets the
// stethoscope, except urgent and emergency care.
func IconFor(specialty string) Icon {
	if s, ok := Lookup(specialty); ok {
		return s.Icon
	}
	for _, s := range specialists {
		if s.Specialty == specialty {
			return s.Icon
		}
	}
	switch specialty {
	case "Urgent Care", "Emergency Medicine", "Emergency Room":
		return IconAlertTriangle
	}
	return IconStethoscope
}

// KeyForSpecialty maps a display name or key back to a catalog key
func KeyForSpecialty(specialty string) (string, bool) {
	if _, ok := Lookup(specialty); ok {
		return specialty, true
	}
	for _, s := range specialists {
		if s.Specialty == specialty {
			return s.Key, true
		}
	}
	return "", false
}

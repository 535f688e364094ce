package catalog

// SynonymEntry is one canonical symptom with the free-text phrases that
// should be recognized as it. Phrases always include the canonical name.
type SynonymEntry struct {
	Symptom string
	Phrases []string
}

var synonyms = []SynonymEntry{
	{"joint pain", []string{"joint pain", "joint ache", "achy joints", "sore joints", "joint stiffness", "arthritis"}},
	{"morning stiffness", []string{"morning stiffness", "stiff in the morning", "stiff when i wake", "hard to move in morning"}},
	{"chest pain", []string{"chest pain", "chest tightness", "chest discomfort", "pressure in chest", "chest pressure"}},
	{"heart palpitations", []string{"heart palpitations", "palpitations", "heart racing", "pounding heart", "heart fluttering", "irregular heartbeat"}},
	{"headache", []string{"headache", "head pain", "head hurts", "migraine", "head pressure"}},
	{"numbness", []string{"numbness", "numb", "loss of sensation", "no feeling"}},
	{"tingling", []string{"tingling", "pins and needles", "prickling", "tingly"}},
	{"dizziness", []string{"dizziness", "dizzy", "lightheaded", "light-headed", "vertigo", "off balance"}},
	{"cough", []string{"cough", "coughing", "hacking", "dry cough", "wet cough"}},
	{"shortness of breath", []string{"shortness of breath", "short of breath", "hard to breathe", "breathless", "difficulty breathing", "can't catch my breath", "wheezing"}},
	{"injury", []string{"injury", "injured", "hurt myself", "sprain", "strain", "twisted", "pulled muscle", "bruise", "fell"}},
	{"swelling", []string{"swelling", "swollen", "puffy", "inflammation", "inflamed", "puffiness"}},
	{"nausea", []string{"nausea", "nauseous", "queasy", "sick to stomach", "feel like vomiting", "upset stomach"}},
	{"abdominal pain", []string{"abdominal pain", "stomach pain", "stomach ache", "belly pain", "tummy pain", "gut pain", "cramping", "stomach cramps"}},
	{"skin rash", []string{"skin rash", "rash", "red skin", "skin red", "breakout", "hives", "patches on skin"}},
	{"itching", []string{"itching", "itchy", "itch", "pruritus", "scratching"}},
	{"eye pain", []string{"eye pain", "eyes hurt", "sore eyes", "eye strain", "pain in eye"}},
	{"blurred vision", []string{"blurred vision", "blurry vision", "blurred", "can't see well", "vision blurry", "double vision"}},
	{"sore throat", []string{"sore throat", "throat pain", "throat hurts", "scratchy throat", "painful swallowing"}},
	{"ear pain", []string{"ear pain", "earache", "ear hurts", "ear infection", "pain in ear"}},
	{"allergies", []string{"allergies", "allergic", "allergy", "runny nose", "itchy eyes", "watery eyes", "congestion"}},
	{"sneezing", []string{"sneezing", "sneeze", "sneezing a lot"}},
	{"anxiety", []string{"anxiety", "anxious", "worried", "nervous", "panic", "stressed", "on edge"}},
	{"low mood", []string{"low mood", "depressed", "depression", "sad", "down", "blue", "hopeless", "no interest"}},
	{"sleep problems", []string{"sleep problems", "can't sleep", "insomnia", "sleepless", "trouble sleeping", "wake at night", "poor sleep", "exhausted but can't sleep"}},
	{"back pain", []string{"back pain", "backache", "lower back pain", "upper back pain", "spine pain", "back hurts"}},
	{"fever", []string{"fever", "feverish", "high temperature", "running a temperature", "chills", "hot and cold"}},
	{"fatigue", []string{"fatigue", "tired", "tiredness", "exhausted", "exhaustion", "low energy", "no energy", "weak", "run down", "worn out"}},
	{"urinary issues", []string{"urinary issues", "painful urination", "burning when urinating", "frequent urination", "urgency", "blood in urine", "pee pain", "urination pain"}},
	{"weight changes", []string{"weight changes", "weight gain", "weight loss", "gaining weight", "losing weight", "unexplained weight"}},
	{"excessive thirst", []string{"excessive thirst", "very thirsty", "thirsty all the time", "increased thirst", "constant thirst", "dry mouth"}},
	{"muscle pain", []string{"muscle pain", "muscle ache", "sore muscles", "muscle soreness", "achy muscles", "myalgia"}},
}

var synonymIndex = func() map[string][]string {
	idx := make(map[string][]string, len(synonyms))
	for _, e := range synonyms {
		idx[e.Symptom] = e.Phrases
	}
	return idx
}()

// Synonyms returns the phrases registered for a canonical symptom, or nil
// when the symptom has no entry.
func Synonyms(symptom string) []string {
	return synonymIndex[symptom]
}

// SynonymSet returns every entry in table order
func SynonymSet() []SynonymEntry {
	out := make([]SynonymEntry, len(synonyms))
	copy(out, synonyms)
	return out
}

// CanonicalSymptoms lists the canonical symptom names in table order
func CanonicalSymptoms() []string {
	out := make([]string, len(synonyms))
	for i, e := range synonyms {
		out[i] = e.Symptom
	}
	return out
}

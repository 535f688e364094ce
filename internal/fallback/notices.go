package fallback

// Reasons an AI-backed answer was replaced
const (
	ReasonTimeout       = "timeout"
	ReasonCircuitOpen   = "circuit_open"
	ReasonNotConfigured = "not_configured"
)

var notices = map[string]string{
	ReasonTimeout:       "The AI analysis is taking longer than usual, so this recommendation comes from our rule-based checker. If your symptoms are urgent, please contact a healthcare provider.",
	ReasonCircuitOpen:   "The AI analysis is temporarily unavailable. This recommendation comes from our rule-based checker. For urgent matters, please contact a healthcare provider directly.",
	ReasonNotConfigured: "This recommendation comes from our rule-based checker.",
}

const defaultNotice = "We could not complete the AI analysis right now. This recommendation comes from our rule-based checker."

// Notice is the user-facing sentence shown when the AI analysis was
// replaced by the rule-based result.
func Notice(reason string) string {
	if n, ok := notices[reason]; ok {
		return n
	}
	return defaultNotice
}

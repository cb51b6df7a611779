package bioflow

import "regexp"

// Session-state fields produced and consumed by the workflow stages. Each
// field has exactly one writer: the stage whose OutputKey names it, or the
// driver for the initial seed.
const (
	StatePersonName         = "person_name"
	StateResearchData       = "research_data"
	StateAnswerSummary      = "answer_summary"
	StateReviewResult       = "review_result"
	StateRefinementAction   = "refinement_action"
	StateAdditionalResearch = "additional_research_needed"
)

// State maps field names to text values for one conversation. Fields are
// overwritten in place as the workflow progresses and are never deleted
// mid-run; the mapping is discarded with its session.
type State map[string]string

// Get returns the value for key, or the empty string when absent.
func (s State) Get(key string) string {
	return s[key]
}

// Set overwrites the value for key.
func (s State) Set(key, value string) {
	s[key] = value
}

var placeholderRegex = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// resolveInstruction substitutes {field} placeholders in an instruction
// template with session-state values at invocation time. A field with no
// value resolves to the empty string.
func resolveInstruction(tmpl string, st State) string {
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(m string) string {
		return st[m[1:len(m)-1]]
	})
}

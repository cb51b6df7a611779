package bioflow

import "strings"

// VerdictKind classifies the reviewer's output.
type VerdictKind string

const (
	VerdictApproved         VerdictKind = "APPROVED"
	VerdictNeedsImprovement VerdictKind = "NEEDS_IMPROVEMENT"
)

// Verdict is the parsed form of the reviewer's free-text output. All
// sentinel-prefix fragility is isolated here; the rest of the workflow only
// sees the tagged variant.
type Verdict struct {
	Kind     VerdictKind
	Feedback string
	// Directive is the follow-up research request a NEEDS_IMPROVEMENT
	// verdict may carry after a | delimiter, with any RESEARCH_NEEDED:
	// marker stripped. Empty when the reviewer gave none.
	Directive string
}

const (
	approvedPrefix     = "APPROVED:"
	improvementPrefix  = "NEEDS_IMPROVEMENT:"
	researchNeededMark = "RESEARCH_NEEDED:"
)

// ParseVerdict reads the reviewer's output. It recognizes exactly two
// verdict forms, "APPROVED: <text>" and "NEEDS_IMPROVEMENT: <text>|<text>".
// Anything else, including the empty string, is no verdict: ok is false and
// no error is raised.
func ParseVerdict(raw string) (Verdict, bool) {
	trimmed := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(trimmed, approvedPrefix):
		feedback := strings.TrimSpace(strings.TrimPrefix(trimmed, approvedPrefix))
		return Verdict{Kind: VerdictApproved, Feedback: feedback}, true
	case strings.HasPrefix(trimmed, improvementPrefix):
		rest := strings.TrimPrefix(trimmed, improvementPrefix)
		feedback := rest
		directive := ""
		if idx := strings.Index(rest, "|"); idx >= 0 {
			feedback = rest[:idx]
			directive = strings.TrimSpace(rest[idx+1:])
			directive = strings.TrimSpace(strings.TrimPrefix(directive, researchNeededMark))
		}
		return Verdict{
			Kind:      VerdictNeedsImprovement,
			Feedback:  strings.TrimSpace(feedback),
			Directive: directive,
		}, true
	}
	return Verdict{}, false
}

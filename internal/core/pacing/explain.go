package pacing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"pacing-radar/internal/core/domain"
)

// Fixed explanation and action texts.
const (
	MsgMissingData = "Missing critical data (opportunity/dates)"
	MsgOnTrack     = "On track — no major concerns."

	ActionClarify    = "Clarify with sales on opportunity size and campaign dates."
	ActionMaintain   = "Maintain pacing — continue monitoring."
	ActionEscalate   = "Urgently escalate blockers (approval/delay/inventory) with client/team."
	ActionReallocate = "Unrealistic recovery pace → consider pausing or reallocating budget."
	ActionAccelerate = "Increase bids 25–50% or expand targeting to accelerate delivery."
	ActionOptimize   = "Review & optimize underperforming placements."
)

// Explain turns classifier output into the why-at-risk text and the
// recommended next action. Only the first matching action rule applies.
func Explain(a domain.Assessment, m domain.Metrics) (why, next string) {
	return whyAtRisk(a), nextAction(a, m)
}

func whyAtRisk(a domain.Assessment) string {
	if a.MissingData {
		return MsgMissingData
	}
	if a.Tier == domain.TierGreen {
		return MsgOnTrack
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{a.PacingReason, a.FeasibilityReason, strings.Join(a.Issues, ", ")} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return upperFirst(strings.Join(parts, ". "))
}

func nextAction(a domain.Assessment, m domain.Metrics) string {
	switch {
	case a.MissingData:
		return ActionClarify
	case a.Tier == domain.TierGreen:
		return ActionMaintain
	case len(a.Issues) > 0:
		return ActionEscalate
	case a.FeasibilityReason != "":
		return ActionReallocate
	case m.SpendBehind != nil && *m.SpendBehind > 0:
		return ActionAccelerate
	default:
		return ActionOptimize
	}
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

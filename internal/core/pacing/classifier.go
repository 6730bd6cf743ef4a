package pacing

import "pacing-radar/internal/core/domain"

// MissingDataScore is assigned when the opportunity or a flight date is
// unknown. The tier is forced to Red regardless of the score.
const MissingDataScore = 5

const (
	yellowThreshold = 3
	redThreshold    = 6
)

type band struct {
	below  float64
	points int
	reason string
}

// pacingBands are checked top to bottom against spend% − time%.
var pacingBands = []band{
	{below: -0.30, points: 5, reason: "Significantly behind pacing"},
	{below: -0.15, points: 3, reason: "Moderately behind pacing"},
	{below: -0.05, points: 1, reason: "Slightly behind pacing"},
}

const onPaceReason = "On or ahead of pacing"

// Classifier scores campaign delivery risk from pacing, catch-up
// feasibility and note keywords.
type Classifier struct {
	ceiling float64
	rules   []KeywordRule
}

// NewClassifier returns a classifier for cfg.
func NewClassifier(cfg Config) *Classifier {
	cfg = cfg.withDefaults()
	return &Classifier{ceiling: cfg.FeasibleDailySpend, rules: cfg.Rules}
}

// Classify returns the score, tier and reason components for c. The
// explanation texts are left empty; see Explain.
func (cl *Classifier) Classify(c domain.Campaign, m domain.Metrics) domain.Assessment {
	if !c.HasCriticalData() {
		return domain.Assessment{
			Score:       MissingDataScore,
			Tier:        domain.TierRed,
			MissingData: true,
		}
	}

	var a domain.Assessment
	pacing := 0
	a.PacingReason = onPaceReason
	if m.PctTime != nil {
		gap := m.PctSpend - *m.PctTime
		a.PacingGap = &gap
		for _, b := range pacingBands {
			if gap < b.below {
				pacing, a.PacingReason = b.points, b.reason
				break
			}
		}
	}

	feasibility := 0
	if m.RequiredDaily != nil {
		required := float64(*m.RequiredDaily)
		switch {
		case required > 2.5*cl.ceiling:
			feasibility, a.FeasibilityReason = 4, "Unrealistic catch-up required"
		case required > cl.ceiling:
			feasibility, a.FeasibilityReason = 2, "Challenging daily pace needed"
		}
	}

	qualitative, issues := scanNotes(cl.rules, c.Notes)
	a.Issues = issues

	a.Score = pacing + feasibility + qualitative
	a.Tier = TierFor(a.Score)
	return a
}

// TierFor maps a score to its tier. Lower bounds are inclusive.
func TierFor(score int) domain.Tier {
	switch {
	case score >= redThreshold:
		return domain.TierRed
	case score >= yellowThreshold:
		return domain.TierYellow
	default:
		return domain.TierGreen
	}
}

package domain

// Tier is the three-level delivery risk classification.
type Tier string

const (
	TierGreen  Tier = "Green"
	TierYellow Tier = "Yellow"
	TierRed    Tier = "Red"
)

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierGreen, TierYellow, TierRed:
		return true
	}
	return false
}

// Assessment is the risk verdict for one campaign. The reason fields keep
// the classifier components so the explanation can be rebuilt from them.
type Assessment struct {
	Score             int      `json:"risk_score"`
	Tier              Tier     `json:"risk"`
	MissingData       bool     `json:"missing_data"`
	PacingGap         *float64 `json:"pacing_gap,omitempty"`
	PacingReason      string   `json:"pacing_reason,omitempty"`
	FeasibilityReason string   `json:"feasibility_reason,omitempty"`
	Issues            []string `json:"issues,omitempty"`
	WhyAtRisk         string   `json:"why_at_risk"`
	NextAction        string   `json:"next_action"`
}

// Evaluation bundles a campaign with everything derived from it for one
// reference date.
type Evaluation struct {
	Campaign   Campaign   `json:"campaign"`
	Metrics    Metrics    `json:"metrics"`
	Assessment Assessment `json:"assessment"`
}

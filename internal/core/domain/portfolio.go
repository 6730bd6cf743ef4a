package domain

import "time"

// CumulativePoint is one step of the portfolio opportunity curve, taken at
// a campaign start date.
type CumulativePoint struct {
	Date       time.Time `json:"date"`
	CampaignID int64     `json:"campaign_id"`
	Cumulative int64     `json:"cumulative_opportunity"`
	PriorYear  float64   `json:"prior_year"`
}

// Portfolio aggregates evaluations across all campaigns. TotalOpportunity
// is nil when no campaign has a known opportunity. YoYGrowth compares the
// last cumulative value with its prior-year baseline and is illustrative
// only.
type Portfolio struct {
	Campaigns          int               `json:"campaigns"`
	TierCounts         map[Tier]int      `json:"tier_counts"`
	TotalOpportunity   *int64            `json:"total_opportunity"`
	RedOpportunity     int64             `json:"red_opportunity"`
	OnTrackOpportunity int64             `json:"on_track_opportunity"`
	PctAtRisk          float64           `json:"pct_at_risk"`
	TotalSpend         int64             `json:"total_spend"`
	TotalSpendBehind   int64             `json:"total_spend_behind"`
	Curve              []CumulativePoint `json:"curve"`
	YoYGrowth          *float64          `json:"yoy_growth"`
}

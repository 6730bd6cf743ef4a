package domain

// Metrics holds pacing values derived from a Campaign at a reference date.
// A nil field means the value could not be derived because one of its
// inputs is missing, which is distinct from a zero value.
type Metrics struct {
	DaysTotal            *int     `json:"days_total"`
	DaysElapsed          *int     `json:"days_elapsed"`
	DaysRemaining        *int     `json:"days_remaining"`
	PctTime              *float64 `json:"pct_time"`
	PctSpend             float64  `json:"pct_spend"`
	ExpectedSpend        *int64   `json:"expected_spend"`
	SpendBehind          *int64   `json:"spend_behind"`
	OpportunityRemaining *int64   `json:"opportunity_remaining"`
	RequiredDaily        *int64   `json:"required_daily"`
	AvgDailySpend        float64  `json:"avg_daily_spend"`
}

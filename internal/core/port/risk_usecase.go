package port

import (
	"context"
	"time"

	"pacing-radar/internal/core/domain"
)

// RiskUseCase defines the business operations exposed by the risk engine.
// Every call evaluates campaigns afresh as of the requested reference date;
// nothing is cached between calls.
type RiskUseCase interface {
	// ListCampaigns returns the priority list of evaluated campaigns,
	// optionally filtered by tier and by days remaining.
	ListCampaigns(ctx context.Context, req ListReq) (*ListResp, error)

	// GetCampaign returns the deep-dive report for one campaign. It returns
	// ErrCampaignNotFound for unknown ids.
	GetCampaign(ctx context.Context, id int64, asOf time.Time) (*CampaignReport, error)

	// GetTrajectory returns the daily spend trajectory of one campaign. A
	// campaign without flight dates yields a skipped trajectory, not an
	// error.
	GetTrajectory(ctx context.Context, id int64, asOf time.Time) (*domain.Trajectory, error)

	// GetPortfolio returns portfolio-wide totals and the cumulative
	// opportunity curve.
	GetPortfolio(ctx context.Context, asOf time.Time) (*domain.Portfolio, error)
}

// ListReq filters the priority list. Nil filters match everything.
type ListReq struct {
	AsOf       time.Time
	Tier       *domain.Tier
	WithinDays *int // keep campaigns with at most this many days remaining
}

// ListResp is the priority list ordered by descending risk score.
type ListResp struct {
	AsOf   time.Time  `json:"as_of"`
	Rows   []ListRow  `json:"rows"`
	Totals ListTotals `json:"totals"`
}

// ListRow is one evaluated campaign with its share of the portfolio.
type ListRow struct {
	domain.Evaluation
	PctPortfolio float64 `json:"pct_portfolio"`
}

// ListTotals sums the filtered rows. Opportunity is nil when none of the
// rows has a known opportunity.
type ListTotals struct {
	Opportunity  *int64  `json:"opportunity"`
	Spend        int64   `json:"spend"`
	SpendBehind  int64   `json:"spend_behind"`
	PctPortfolio float64 `json:"pct_portfolio"`
}

// CampaignReport is the deep-dive view of one campaign.
type CampaignReport struct {
	AsOf time.Time `json:"as_of"`
	domain.Evaluation
	Requirements Requirements `json:"requirements"`
}

// Requirements lists what it takes to finish the campaign on time.
// DailySpendGap is nil when the required daily spend is unknown.
type Requirements struct {
	OpportunityRemaining *int64   `json:"opportunity_remaining"`
	RequiredDaily        *int64   `json:"required_daily"`
	AvgDailySpend        float64  `json:"avg_daily_spend"`
	DailySpendGap        *float64 `json:"daily_spend_gap"`
	DaysRemaining        *int     `json:"days_remaining"`
}

package usecase

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"pacing-radar/internal/core/domain"
	"pacing-radar/internal/core/pacing"
	"pacing-radar/internal/core/port"
)

var _ port.RiskUseCase = (*RiskUseCase)(nil)

// RiskUseCase evaluates campaigns from a repository with the pacing engine.
// It implements port.RiskUseCase.
type RiskUseCase struct {
	repo   port.CampaignRepository
	engine *pacing.Engine
	logger *slog.Logger

	// workers bounds how many campaigns are evaluated concurrently.
	workers int
}

// NewRiskUseCase creates a new usecase. A non-positive workers value
// evaluates campaigns one at a time.
func NewRiskUseCase(repo port.CampaignRepository, engine *pacing.Engine, workers int, logger *slog.Logger) *RiskUseCase {
	if workers < 1 {
		workers = 1
	}
	return &RiskUseCase{repo: repo, engine: engine, logger: logger, workers: workers}
}

// ListCampaigns evaluates every campaign and returns the filtered rows,
// highest risk score first. Portfolio shares are taken against the total
// opportunity of all campaigns, not only the filtered ones.
func (u *RiskUseCase) ListCampaigns(ctx context.Context, req port.ListReq) (*port.ListResp, error) {
	evals, err := u.evaluatePortfolio(ctx, req.AsOf)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, e := range evals {
		if e.Campaign.Opportunity != nil {
			total += *e.Campaign.Opportunity
		}
	}

	resp := &port.ListResp{AsOf: pacing.Day(req.AsOf), Rows: make([]port.ListRow, 0, len(evals))}
	for _, e := range evals {
		if !matches(e, req) {
			continue
		}
		resp.Rows = append(resp.Rows, port.ListRow{Evaluation: e, PctPortfolio: share(e.Campaign.Opportunity, total)})
	}
	slices.SortStableFunc(resp.Rows, func(a, b port.ListRow) int {
		if c := cmp.Compare(b.Assessment.Score, a.Assessment.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Campaign.ID, b.Campaign.ID)
	})

	var opp int64
	known := false
	for _, r := range resp.Rows {
		resp.Totals.Spend += r.Campaign.SpendToDate
		if r.Metrics.SpendBehind != nil {
			resp.Totals.SpendBehind += *r.Metrics.SpendBehind
		}
		if r.Campaign.Opportunity != nil {
			known = true
			opp += *r.Campaign.Opportunity
		}
	}
	if known {
		resp.Totals.Opportunity = &opp
		resp.Totals.PctPortfolio = share(&opp, total)
	}
	return resp, nil
}

// GetCampaign returns the deep-dive report for one campaign.
func (u *RiskUseCase) GetCampaign(ctx context.Context, id int64, asOf time.Time) (*port.CampaignReport, error) {
	c, err := u.campaign(ctx, id)
	if err != nil {
		return nil, err
	}
	e := u.engine.Evaluate(*c, asOf)

	req := port.Requirements{
		OpportunityRemaining: e.Metrics.OpportunityRemaining,
		RequiredDaily:        e.Metrics.RequiredDaily,
		AvgDailySpend:        e.Metrics.AvgDailySpend,
		DaysRemaining:        e.Metrics.DaysRemaining,
	}
	if e.Metrics.RequiredDaily != nil {
		gap := math.RoundToEven((float64(*e.Metrics.RequiredDaily)-e.Metrics.AvgDailySpend)*100) / 100
		req.DailySpendGap = &gap
	}
	return &port.CampaignReport{AsOf: pacing.Day(asOf), Evaluation: e, Requirements: req}, nil
}

// GetTrajectory projects the spend curve of one campaign.
func (u *RiskUseCase) GetTrajectory(ctx context.Context, id int64, asOf time.Time) (*domain.Trajectory, error) {
	c, err := u.campaign(ctx, id)
	if err != nil {
		return nil, err
	}
	t := u.engine.Project(*c, asOf)
	return &t, nil
}

// GetPortfolio evaluates every campaign and aggregates the results.
func (u *RiskUseCase) GetPortfolio(ctx context.Context, asOf time.Time) (*domain.Portfolio, error) {
	evals, err := u.evaluatePortfolio(ctx, asOf)
	if err != nil {
		return nil, err
	}
	p := u.engine.Summarize(evals)
	return &p, nil
}

func (u *RiskUseCase) campaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign %d: %w", id, err)
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	return c, nil
}

// evaluatePortfolio loads all campaigns and evaluates them in parallel.
// Each worker writes only its own slot, so results keep source order.
func (u *RiskUseCase) evaluatePortfolio(ctx context.Context, asOf time.Time) ([]domain.Evaluation, error) {
	campaigns, err := u.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	runID := uuid.NewString()
	started := time.Now()

	evals := make([]domain.Evaluation, len(campaigns))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for i := range campaigns {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			evals[i] = u.engine.Evaluate(campaigns[i], asOf)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	tiers := map[domain.Tier]int{}
	for _, e := range evals {
		tiers[e.Assessment.Tier]++
	}
	u.logger.Debug("portfolio evaluated",
		slog.String("run_id", runID),
		slog.String("as_of", pacing.Day(asOf).Format(time.DateOnly)),
		slog.Int("campaigns", len(evals)),
		slog.Int("red", tiers[domain.TierRed]),
		slog.Int("yellow", tiers[domain.TierYellow]),
		slog.Int("green", tiers[domain.TierGreen]),
		slog.Duration("took", time.Since(started)),
	)
	return evals, nil
}

func matches(e domain.Evaluation, req port.ListReq) bool {
	if req.Tier != nil && e.Assessment.Tier != *req.Tier {
		return false
	}
	if req.WithinDays != nil {
		if e.Metrics.DaysRemaining == nil || *e.Metrics.DaysRemaining > *req.WithinDays {
			return false
		}
	}
	return true
}

func share(opportunity *int64, total int64) float64 {
	if opportunity == nil || total <= 0 {
		return 0
	}
	return float64(*opportunity) / float64(total)
}

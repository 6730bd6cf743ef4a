package pacing

import (
	"cmp"
	"slices"

	"pacing-radar/internal/core/domain"
)

// Summarize aggregates evaluations into portfolio totals and the
// cumulative opportunity curve. The prior-year series is the curve scaled
// by priorYearRatio and exists for display only.
func Summarize(evals []domain.Evaluation, priorYearRatio float64) domain.Portfolio {
	p := domain.Portfolio{
		Campaigns: len(evals),
		TierCounts: map[domain.Tier]int{
			domain.TierGreen:  0,
			domain.TierYellow: 0,
			domain.TierRed:    0,
		},
	}

	var total int64
	known := false
	for _, e := range evals {
		p.TierCounts[e.Assessment.Tier]++
		p.TotalSpend += e.Campaign.SpendToDate
		if e.Metrics.SpendBehind != nil {
			p.TotalSpendBehind += *e.Metrics.SpendBehind
		}
		if e.Campaign.Opportunity == nil {
			continue
		}
		known = true
		total += *e.Campaign.Opportunity
		if e.Assessment.Tier == domain.TierRed {
			p.RedOpportunity += *e.Campaign.Opportunity
		}
	}
	if known {
		p.TotalOpportunity = &total
		p.OnTrackOpportunity = total - p.RedOpportunity
		if total > 0 {
			p.PctAtRisk = float64(p.RedOpportunity) / float64(total)
		}
	}

	p.Curve = cumulativeCurve(evals, priorYearRatio)
	if n := len(p.Curve); n > 0 {
		last := p.Curve[n-1]
		if last.PriorYear > 0 {
			growth := (float64(last.Cumulative) - last.PriorYear) / last.PriorYear
			p.YoYGrowth = &growth
		}
	}
	return p
}

func cumulativeCurve(evals []domain.Evaluation, ratio float64) []domain.CumulativePoint {
	dated := make([]domain.Campaign, 0, len(evals))
	for _, e := range evals {
		if e.Campaign.StartDate != nil && e.Campaign.Opportunity != nil {
			dated = append(dated, e.Campaign)
		}
	}
	slices.SortStableFunc(dated, func(a, b domain.Campaign) int {
		if c := a.StartDate.Compare(*b.StartDate); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	curve := make([]domain.CumulativePoint, 0, len(dated))
	var cum int64
	for _, c := range dated {
		cum += *c.Opportunity
		curve = append(curve, domain.CumulativePoint{
			Date:       Day(*c.StartDate),
			CampaignID: c.ID,
			Cumulative: cum,
			PriorYear:  float64(cum) * ratio,
		})
	}
	return curve
}

package pacing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacing-radar/internal/core/domain"
	"pacing-radar/internal/dataset"
)

func evaluateSample(t *testing.T, e *Engine) []domain.Evaluation {
	t.Helper()
	campaigns, err := dataset.Sample()
	require.NoError(t, err)
	evals := make([]domain.Evaluation, len(campaigns))
	for i, c := range campaigns {
		evals[i] = e.Evaluate(c, dataset.SampleReferenceDate)
	}
	return evals
}

func TestSummarize_SamplePortfolio(t *testing.T) {
	e := NewEngine(DefaultConfig())
	p := e.Summarize(evaluateSample(t, e))

	assert.Equal(t, 16, p.Campaigns)
	require.NotNil(t, p.TotalOpportunity)
	assert.Equal(t, int64(701000), *p.TotalOpportunity)
	assert.Equal(t, 5, p.TierCounts[domain.TierRed])
	assert.Equal(t, int64(50000+25000+45000+38000), p.RedOpportunity)
	assert.Equal(t, *p.TotalOpportunity-p.RedOpportunity, p.OnTrackOpportunity)
	assert.InDelta(t, 158000.0/701000.0, p.PctAtRisk, 1e-12)

	require.Len(t, p.Curve, 14, "campaigns without start date or opportunity are left out")
	assert.Equal(t, int64(15), p.Curve[0].CampaignID, "earliest start first")
	assert.Equal(t, int64(663000), p.Curve[len(p.Curve)-1].Cumulative)

	require.NotNil(t, p.YoYGrowth)
	assert.InDelta(t, 1/0.65-1, *p.YoYGrowth, 1e-12)
	assert.Equal(t, "53.8%", fmt.Sprintf("%.1f%%", *p.YoYGrowth*100))
}

func TestSummarize_SampleTiers(t *testing.T) {
	e := NewEngine(DefaultConfig())
	byID := map[int64]domain.Assessment{}
	for _, ev := range evaluateSample(t, e) {
		byID[ev.Campaign.ID] = ev.Assessment
	}

	assert.Equal(t, domain.TierRed, byID[1].Tier)
	assert.Equal(t, domain.TierYellow, byID[2].Tier)
	assert.Equal(t, ActionAccelerate, byID[2].NextAction)
	assert.Equal(t, domain.TierGreen, byID[3].Tier)
	assert.Equal(t, MsgOnTrack, byID[3].WhyAtRisk)
	assert.Equal(t, domain.TierRed, byID[6].Tier)
	assert.Equal(t, "Moderately behind pacing. inventory/low impressions", byID[6].WhyAtRisk)
	assert.Equal(t, 14, byID[9].Score)
	assert.Equal(t, MsgMissingData, byID[11].WhyAtRisk)
	assert.Equal(t, ActionClarify, byID[14].NextAction)
	assert.Equal(t, domain.TierGreen, byID[16].Tier, "issues alone do not reach Yellow")
	assert.Equal(t, ActionMaintain, byID[16].NextAction)
}

func TestSummarize_PriorYearRatio(t *testing.T) {
	e := NewEngine(Config{PriorYearRatio: 0.5})
	p := e.Summarize(evaluateSample(t, e))

	require.NotNil(t, p.YoYGrowth)
	assert.InDelta(t, 1.0, *p.YoYGrowth, 1e-12)
	for _, pt := range p.Curve {
		assert.InDelta(t, float64(pt.Cumulative)*0.5, pt.PriorYear, 1e-9)
	}
}

func TestSummarize_NoKnownOpportunity(t *testing.T) {
	evals := []domain.Evaluation{
		{Campaign: domain.Campaign{ID: 1, SpendToDate: 10}, Assessment: domain.Assessment{Tier: domain.TierRed}},
		{Campaign: domain.Campaign{ID: 2, SpendToDate: 20}, Assessment: domain.Assessment{Tier: domain.TierRed}},
	}
	p := Summarize(evals, DefaultPriorYearRatio)

	assert.Nil(t, p.TotalOpportunity)
	assert.Nil(t, p.YoYGrowth)
	assert.Zero(t, p.PctAtRisk)
	assert.Empty(t, p.Curve)
	assert.Equal(t, int64(30), p.TotalSpend)
	assert.Equal(t, 2, p.TierCounts[domain.TierRed])
	assert.Equal(t, 0, p.TierCounts[domain.TierGreen])
}

func TestSummarize_Empty(t *testing.T) {
	p := Summarize(nil, DefaultPriorYearRatio)
	assert.Zero(t, p.Campaigns)
	assert.Nil(t, p.TotalOpportunity)
	assert.Len(t, p.TierCounts, 3)
}

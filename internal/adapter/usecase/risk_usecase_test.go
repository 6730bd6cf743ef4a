package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pacing-radar/internal/core/domain"
	"pacing-radar/internal/core/pacing"
	"pacing-radar/internal/core/port"
	"pacing-radar/internal/core/port/mocks"
	"pacing-radar/internal/dataset"
)

func newUseCase(t *testing.T, repo port.CampaignRepository) *RiskUseCase {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRiskUseCase(repo, pacing.NewEngine(pacing.DefaultConfig()), 4, logger)
}

func sample(t *testing.T) []domain.Campaign {
	t.Helper()
	campaigns, err := dataset.Sample()
	require.NoError(t, err)
	return campaigns
}

func byID(t *testing.T, id int64) *domain.Campaign {
	t.Helper()
	for _, c := range sample(t) {
		if c.ID == id {
			return &c
		}
	}
	t.Fatalf("no sample campaign %d", id)
	return nil
}

// TestListCampaigns ensures the priority list is ordered by score and
// shares are taken against the whole portfolio.
func TestListCampaigns(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListCampaigns(mock.Anything).Return(sample(t), nil)

	resp, err := newUseCase(t, repo).ListCampaigns(context.Background(), port.ListReq{AsOf: dataset.SampleReferenceDate})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 16)

	assert.Equal(t, int64(9), resp.Rows[0].Campaign.ID, "Aggregator X has the highest score")
	for i := 1; i < len(resp.Rows); i++ {
		assert.GreaterOrEqual(t, resp.Rows[i-1].Assessment.Score, resp.Rows[i].Assessment.Score)
	}
	require.NotNil(t, resp.Totals.Opportunity)
	assert.Equal(t, int64(701000), *resp.Totals.Opportunity)
	assert.InDelta(t, 1.0, resp.Totals.PctPortfolio, 1e-12)
	assert.Equal(t, dataset.SampleReferenceDate, resp.AsOf)
}

func TestListCampaigns_Filters(t *testing.T) {
	red := domain.TierRed
	week := 7

	cases := []struct {
		name string
		req  port.ListReq
		ids  []int64
	}{
		{name: "red", req: port.ListReq{Tier: &red}, ids: []int64{9, 1, 6, 11, 14}},
		{name: "within a week", req: port.ListReq{WithinDays: &week}, ids: []int64{2, 3, 8, 9, 12, 15}},
		{name: "red within a week", req: port.ListReq{Tier: &red, WithinDays: &week}, ids: []int64{9}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCampaignRepository(t)
			repo.EXPECT().ListCampaigns(mock.Anything).Return(sample(t), nil)

			tc.req.AsOf = dataset.SampleReferenceDate
			resp, err := newUseCase(t, repo).ListCampaigns(context.Background(), tc.req)
			require.NoError(t, err)

			var got []int64
			for _, r := range resp.Rows {
				got = append(got, r.Campaign.ID)
				if tc.req.WithinDays != nil {
					require.NotNil(t, r.Metrics.DaysRemaining)
					assert.LessOrEqual(t, *r.Metrics.DaysRemaining, week)
				}
			}
			assert.ElementsMatch(t, tc.ids, got)
		})
	}
}

func TestListCampaigns_RowShare(t *testing.T) {
	red := domain.TierRed
	week := 7
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListCampaigns(mock.Anything).Return(sample(t), nil)

	resp, err := newUseCase(t, repo).ListCampaigns(context.Background(), port.ListReq{
		AsOf:       dataset.SampleReferenceDate,
		Tier:       &red,
		WithinDays: &week,
	})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.InDelta(t, 45000.0/701000.0, resp.Rows[0].PctPortfolio, 1e-12)
	assert.Equal(t, int64(12000), resp.Totals.Spend)
}

func TestGetCampaign_Requirements(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(byID(t, 1), nil)

	rep, err := newUseCase(t, repo).GetCampaign(context.Background(), 1, dataset.SampleReferenceDate)
	require.NoError(t, err)

	assert.Equal(t, domain.TierRed, rep.Assessment.Tier)
	assert.Equal(t, int64(28000), *rep.Requirements.OpportunityRemaining)
	assert.Equal(t, int64(1333), *rep.Requirements.RequiredDaily)
	assert.Equal(t, 1047.62, rep.Requirements.AvgDailySpend)
	require.NotNil(t, rep.Requirements.DailySpendGap)
	assert.Equal(t, 285.38, *rep.Requirements.DailySpendGap)
	assert.Equal(t, 21, *rep.Requirements.DaysRemaining)
}

func TestGetCampaign_MissingOpportunityHasNoGap(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(11)).Return(byID(t, 11), nil)

	rep, err := newUseCase(t, repo).GetCampaign(context.Background(), 11, dataset.SampleReferenceDate)
	require.NoError(t, err)
	assert.Nil(t, rep.Requirements.DailySpendGap)
	assert.Equal(t, pacing.MsgMissingData, rep.Assessment.WhyAtRisk)
}

func TestGetCampaign_NotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(404)).Return(nil, nil)

	_, err := newUseCase(t, repo).GetCampaign(context.Background(), 404, dataset.SampleReferenceDate)
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestGetTrajectory_SkipsUndatedCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(14)).Return(byID(t, 14), nil)

	tr, err := newUseCase(t, repo).GetTrajectory(context.Background(), 14, dataset.SampleReferenceDate)
	require.NoError(t, err)
	assert.True(t, tr.Skipped)
	assert.Empty(t, tr.Points)
}

func TestGetPortfolio(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListCampaigns(mock.Anything).Return(sample(t), nil)

	p, err := newUseCase(t, repo).GetPortfolio(context.Background(), dataset.SampleReferenceDate)
	require.NoError(t, err)
	assert.Equal(t, int64(701000), *p.TotalOpportunity)
	assert.Equal(t, int64(158000), p.RedOpportunity)
}

func TestRepositoryErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListCampaigns(mock.Anything).Return(nil, boom)
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(nil, boom)

	uc := newUseCase(t, repo)
	_, err := uc.GetPortfolio(context.Background(), dataset.SampleReferenceDate)
	assert.ErrorIs(t, err, boom)
	_, err = uc.GetTrajectory(context.Background(), 1, dataset.SampleReferenceDate)
	assert.ErrorIs(t, err, boom)
}

func TestCanceledContextStopsEvaluation(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListCampaigns(mock.Anything).Return(sample(t), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newUseCase(t, repo).GetPortfolio(ctx, dataset.SampleReferenceDate)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestConcurrentEvaluation ensures parallel runs over shared records at
// different reference dates agree with sequential ones and leave the
// records untouched.
func TestConcurrentEvaluation(t *testing.T) {
	campaigns := sample(t)
	pristine := sample(t)

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListCampaigns(mock.Anything).Return(campaigns, nil)
	uc := newUseCase(t, repo)

	dates := make([]time.Time, 10)
	want := make([]*domain.Portfolio, len(dates))
	for i := range dates {
		dates[i] = dataset.SampleReferenceDate.AddDate(0, 0, i*3-10)
		p, err := uc.GetPortfolio(context.Background(), dates[i])
		require.NoError(t, err)
		want[i] = p
	}

	got := make([]*domain.Portfolio, len(dates))
	var wg sync.WaitGroup
	wg.Add(len(dates))
	for i := range dates {
		i := i
		go func() {
			defer wg.Done()
			got[i], _ = uc.GetPortfolio(context.Background(), dates[i])
		}()
	}
	wg.Wait()

	assert.Equal(t, want, got)
	assert.Equal(t, pristine, campaigns)
}

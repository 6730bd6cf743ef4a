package memory

import (
	"context"
	"slices"

	"pacing-radar/internal/core/domain"
	"pacing-radar/internal/core/port"
)

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// CampaignRepository serves a fixed set of campaigns held in memory. The
// set is copied on construction and never changes afterwards, so the
// repository is safe for concurrent use without locking.
type CampaignRepository struct {
	campaigns []domain.Campaign
	index     map[int64]int
}

// NewCampaignRepository returns a repository over a copy of campaigns.
func NewCampaignRepository(campaigns []domain.Campaign) *CampaignRepository {
	r := &CampaignRepository{
		campaigns: slices.Clone(campaigns),
		index:     make(map[int64]int, len(campaigns)),
	}
	for i, c := range r.campaigns {
		r.index[c.ID] = i
	}
	return r
}

// ListCampaigns returns the campaigns in source order.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.campaigns), nil
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	c := r.campaigns[i]
	return &c, nil
}

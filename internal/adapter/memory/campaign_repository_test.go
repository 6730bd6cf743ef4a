package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacing-radar/internal/core/domain"
)

func TestCampaignRepository(t *testing.T) {
	src := []domain.Campaign{{ID: 1, Advertiser: "A"}, {ID: 2, Advertiser: "B"}}
	repo := NewCampaignRepository(src)
	src[0].Advertiser = "changed"

	all, err := repo.ListCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Advertiser, "construction copies the input")

	all[1].Advertiser = "mutated"
	c, err := repo.GetCampaign(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "B", c.Advertiser, "listing hands out copies")

	missing, err := repo.GetCampaign(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCampaignRepository_CanceledContext(t *testing.T) {
	repo := NewCampaignRepository(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListCampaigns(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.GetCampaign(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

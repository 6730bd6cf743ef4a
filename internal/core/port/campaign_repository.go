package port

import (
	"context"
	"errors"

	"pacing-radar/internal/core/domain"
)

// ErrCampaignNotFound is returned when no campaign has the requested id.
var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignRepository is the read-only source of campaign records. It is an
// outbound port in hexagonal architecture. Implementations must be safe for
// concurrent use and must return records the caller may not mutate in place.
type CampaignRepository interface {
	// ListCampaigns returns every campaign known to the source.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
}

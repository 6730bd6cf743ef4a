package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pacing-radar/internal/core/domain"
	"pacing-radar/internal/core/port"
)

var _ port.CampaignRepository = (*CampaignRepository)(nil)

const campaignColumns = `
            id,
            advertiser,
            industry,
            opportunity,
            spend_to_date,
            start_date,
            end_date,
            notes,
            status,
            owner`

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. It only reads; campaign records are maintained upstream.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ListCampaigns returns all campaigns ordered by id.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+campaignColumns+` FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// scanCampaign reads one row in campaignColumns order. Nullable columns
// scan into pointers and stay nil for SQL NULL.
func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c      domain.Campaign
		status string
	)
	err := row.Scan(
		&c.ID,
		&c.Advertiser,
		&c.Industry,
		&c.Opportunity,
		&c.SpendToDate,
		&c.StartDate,
		&c.EndDate,
		&c.Notes,
		&status,
		&c.Owner,
	)
	c.Status = domain.Status(status)
	return c, err
}

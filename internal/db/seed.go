package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pacing-radar/internal/core/domain"
)

// Seed inserts campaigns into the campaigns table in one batch. Rows whose
// id already exists are left untouched. It returns the number of rows
// inserted.
func Seed(ctx context.Context, pool *pgxpool.Pool, campaigns []domain.Campaign) (int64, error) {
	batch := &pgx.Batch{}
	for _, c := range campaigns {
		batch.Queue(`INSERT INTO campaigns
    (id, advertiser, industry, opportunity, spend_to_date, start_date, end_date, notes, status, owner, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,now(),now()) ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Advertiser, c.Industry, c.Opportunity, c.SpendToDate, c.StartDate, c.EndDate, c.Notes, string(c.Status), c.Owner)
	}

	br := pool.SendBatch(ctx, batch)
	defer br.Close()

	var inserted int64
	for _, c := range campaigns {
		tag, err := br.Exec()
		if err != nil {
			return inserted, fmt.Errorf("seed campaign %d: %w", c.ID, err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

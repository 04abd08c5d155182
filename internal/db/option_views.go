package db

import (
	"context"

	"askfun/internal/models"
)

// IncrementOptionView upserts a send modal open count for a profile, option and outcome.
func (d *DB) IncrementOptionView(ctx context.Context, handle, option, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO option_views (handle, option_key, outcome, count, last_seen_at)
		VALUES ($1, $2, $3, 1, NOW())
		ON CONFLICT (handle, option_key, outcome) DO UPDATE
		SET count = option_views.count + 1, last_seen_at = NOW()
	`, handle, option, outcome)
	return err
}

// GetAllOptionViews returns all option view rows for metrics export.
func (d *DB) GetAllOptionViews(ctx context.Context) ([]models.OptionView, error) {
	rows, err := d.Pool.Query(ctx, `SELECT handle, option_key, outcome, count, last_seen_at FROM option_views`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []models.OptionView
	for rows.Next() {
		var v models.OptionView
		if err := rows.Scan(&v.Handle, &v.Option, &v.Outcome, &v.Count, &v.LastSeenAt); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"askfun/internal/models"
)

const profileColumns = `id, handle, entity_name, fb_page, avatar_url, affiliation, about, created_at, updated_at`

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID, &p.Handle, &p.EntityName, &p.FBPage, &p.AvatarURL,
		&p.Affiliation, &p.About, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProfile creates a new profile.
func (d *DB) CreateProfile(ctx context.Context, p *models.Profile) error {
	query := `
		INSERT INTO profiles (handle, entity_name, fb_page, avatar_url, affiliation, about)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := d.Pool.QueryRow(ctx, query,
		p.Handle, p.EntityName, p.FBPage, p.AvatarURL, p.Affiliation, p.About,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateHandle
	}
	return err
}

// GetProfileByHandle retrieves a profile by its handle.
func (d *DB) GetProfileByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE handle = $1`
	return scanProfile(d.Pool.QueryRow(ctx, query, handle))
}

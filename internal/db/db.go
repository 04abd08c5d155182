package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"askfun/internal/models"
	"askfun/migrations"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Ping checks that the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// SeedDevProfiles inserts sample profiles for development. Skips handles that already exist.
func (d *DB) SeedDevProfiles(ctx context.Context) error {
	profiles := []*models.Profile{
		{
			Handle:      "mmcm",
			EntityName:  "MMCM Confessions",
			FBPage:      optional("https://www.facebook.com/mmcmconfessions"),
			Affiliation: optional("Mapua Malayan Colleges Mindanao"),
			About:       optional("Send us anything. **Anonymously.**"),
		},
		{
			Handle:      "gophers",
			EntityName:  "Gophers Anonymous",
			FBPage:      optional("https://www.facebook.com/golang"),
			Affiliation: optional("Go Community"),
			About:       optional("Questions about Go, big or small."),
		},
		{Handle: "nolink", EntityName: "Quiet Corner"},
	}

	for _, p := range profiles {
		err := d.CreateProfile(ctx, p)
		if errors.Is(err, ErrDuplicateHandle) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed profile %s: %w", p.Handle, err)
		}
	}

	return nil
}

func optional(s string) *string {
	return &s
}

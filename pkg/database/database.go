package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	cfg.MinConns = 1
	cfg.MaxConns = 10
	cfg.MaxConnLifetime = time.Hour
	cfg.HealthCheckPeriod = 30 * time.Second

	return pgxpool.NewWithConfig(ctx, cfg)
}

// EnsureSchema creates the guest_groups table if it does not exist. The guest
// list is a flat document-per-party collection keyed by the unique invite code.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS guest_groups (
		id                   BIGSERIAL PRIMARY KEY,
		display_name         TEXT NOT NULL UNIQUE,
		code                 TEXT NOT NULL UNIQUE,
		party_count          INT  NOT NULL DEFAULT 0,
		ceremony_count       INT  NOT NULL DEFAULT 0,
		party_attendance     INT  NOT NULL DEFAULT -1,
		ceremony_attendance  INT  NOT NULL DEFAULT -1,
		plus_one             BOOLEAN NOT NULL DEFAULT FALSE,
		dietary_requirements TEXT,
		song_choice          TEXT,
		address              TEXT,
		postcode             TEXT,
		email                TEXT,
		phone                TEXT,
		parking_required     BOOLEAN NOT NULL DEFAULT FALSE,
		admin                BOOLEAN NOT NULL DEFAULT FALSE,
		created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at           TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, ddl)
	return err
}

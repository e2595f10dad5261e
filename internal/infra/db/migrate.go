package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// migrations are applied in order on startup. Statements are idempotent; the
// collector runs as a single instance and does not need a migration table.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sources (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		url TEXT NOT NULL,
		language TEXT NOT NULL DEFAULT 'en',
		country TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS articles (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		link TEXT NOT NULL UNIQUE,
		source_name TEXT NOT NULL,
		source_language TEXT NOT NULL DEFAULT 'en',
		country TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		published_date TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_published_date ON articles (published_date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_source_name ON articles (source_name)`,
}

// MigrateUp applies all schema migrations.
func MigrateUp(ctx context.Context, pool *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := pool.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("MigrateUp: statement %d: %w", i, err)
		}
	}
	slog.Info("database migrations applied", slog.Int("statements", len(migrations)))
	return nil
}

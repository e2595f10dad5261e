package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"cryptonews-collector/internal/domain/entity"
	"cryptonews-collector/internal/repository"
)

type SourceRepo struct {
	db *sql.DB
}

func NewSourceRepo(db *sql.DB) repository.SourceRepository {
	return &SourceRepo{db: db}
}

func (repo *SourceRepo) List(ctx context.Context) ([]*entity.Source, error) {
	const query = `
SELECT id, name, url, language, country, category
FROM sources
ORDER BY name`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sources := make([]*entity.Source, 0, 50)
	for rows.Next() {
		var source entity.Source
		if err := rows.Scan(&source.ID, &source.Name, &source.URL,
			&source.Language, &source.Country, &source.Category); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		sources = append(sources, &source)
	}
	return sources, rows.Err()
}

// Upsert inserts a source or updates the existing row with the same name.
// The registry import tool re-runs against the same file; names are the
// stable identity.
func (repo *SourceRepo) Upsert(ctx context.Context, source *entity.Source) error {
	if err := source.Validate(); err != nil {
		return fmt.Errorf("Upsert: %w", err)
	}

	const query = `
INSERT INTO sources (name, url, language, country, category)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (name) DO UPDATE
SET url = EXCLUDED.url,
    language = EXCLUDED.language,
    country = EXCLUDED.country,
    category = EXCLUDED.category
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		source.Name, source.URL, source.Language, source.Country, source.Category,
	).Scan(&source.ID)
	if err != nil {
		return fmt.Errorf("Upsert: %w", err)
	}
	return nil
}

// CountSources returns the total number of registered sources.
func (repo *SourceRepo) CountSources(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM sources`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountSources: %w", err)
	}
	return count, nil
}

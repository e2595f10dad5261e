// Package postgres implements the repository interfaces on PostgreSQL using
// database/sql with the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"cryptonews-collector/internal/domain/entity"
	"cryptonews-collector/internal/repository"
)

// pgUniqueViolation is the SQLSTATE class for unique constraint violations.
const pgUniqueViolation = "23505"

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

// Create inserts an article. A unique-constraint violation on the link column
// is reported as entity.ErrDuplicateLink; the constraint is the dedup
// authority even when a pre-check said the link was new.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles (title, description, link, source_name, source_language, country, category, published_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.Description, article.Link,
		article.SourceName, article.SourceLanguage, article.Country, article.Category,
		article.PublishedDate, article.CreatedAt,
	).Scan(&article.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("Create: link %q: %w", article.Link, entity.ErrDuplicateLink)
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// ExistsByLinkBatch checks many links in one query. Links absent from the
// result map are not stored.
func (repo *ArticleRepo) ExistsByLinkBatch(ctx context.Context, links []string) (map[string]bool, error) {
	result := make(map[string]bool, len(links))
	if len(links) == 0 {
		return result, nil
	}

	const query = `SELECT link FROM articles WHERE link = ANY($1)`
	rows, err := repo.db.QueryContext(ctx, query, pq.Array(links))
	if err != nil {
		return nil, fmt.Errorf("ExistsByLinkBatch: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for _, link := range links {
		result[link] = false
	}
	for rows.Next() {
		var link string
		if err := rows.Scan(&link); err != nil {
			return nil, fmt.Errorf("ExistsByLinkBatch: Scan: %w", err)
		}
		result[link] = true
	}
	return result, rows.Err()
}

// CountArticles returns the total number of stored articles.
func (repo *ArticleRepo) CountArticles(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountArticles: %w", err)
	}
	return count, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}

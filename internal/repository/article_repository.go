package repository

import (
	"context"

	"cryptonews-collector/internal/domain/entity"
)

// ArticleRepository is the durable store of accepted articles.
//
// Create is the authoritative dedup guard: the store's unique constraint on
// link wins over any prior existence check, and a conflicting insert surfaces
// as entity.ErrDuplicateLink. The batch existence check is a pre-check that
// lets the pipeline skip translation and classification work; it is racy
// against concurrent writers and must never be relied on for correctness.
type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	// ExistsByLinkBatch checks many links in one query to avoid N+1 lookups
	// across a feed's entries.
	ExistsByLinkBatch(ctx context.Context, links []string) (map[string]bool, error)
	CountArticles(ctx context.Context) (int64, error)
}

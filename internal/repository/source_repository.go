package repository

import (
	"context"

	"cryptonews-collector/internal/domain/entity"
)

// SourceRepository is the source registry. The collector reads it in full at
// the start of every cycle; Upsert exists for the registry import tool and
// keys on the source name.
type SourceRepository interface {
	List(ctx context.Context) ([]*entity.Source, error)
	Upsert(ctx context.Context, source *entity.Source) error
	CountSources(ctx context.Context) (int64, error)
}

// Package collect orchestrates one collection cycle: fetch every registered
// feed, normalize and translate entries, classify them for relevance, and
// persist the accepted articles.
package collect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"cryptonews-collector/internal/domain/entity"
	"cryptonews-collector/internal/observability/metrics"
	"cryptonews-collector/internal/repository"
	"cryptonews-collector/internal/utils/text"
)

const (
	// classifierParallelism bounds concurrent chat-model calls per source.
	classifierParallelism = 3

	// descriptionLimit caps the description text handed to translation and
	// classification. Chat prompts degrade past this size and feeds
	// sometimes embed entire article bodies. Stored descriptions are not
	// capped; only the model inputs are.
	descriptionLimit = 2000
)

// Fetcher fetches and parses a feed from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]FeedEntry, error)
}

// Translator converts text to English.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Classifier decides whether an entry is relevant crypto news.
type Classifier interface {
	Classify(ctx context.Context, title, description string) (bool, error)
}

// Service runs the collection pipeline over all registered sources.
type Service struct {
	SourceRepo  repository.SourceRepository
	ArticleRepo repository.ArticleRepository
	Fetcher     Fetcher
	Translator  Translator
	Classifier  Classifier
}

// NewService creates a collect Service with the provided dependencies.
func NewService(
	sourceRepo repository.SourceRepository,
	articleRepo repository.ArticleRepository,
	fetcher Fetcher,
	translator Translator,
	classifier Classifier,
) Service {
	return Service{
		SourceRepo:  sourceRepo,
		ArticleRepo: articleRepo,
		Fetcher:     fetcher,
		Translator:  translator,
		Classifier:  classifier,
	}
}

// CollectStats contains statistics about one collection cycle.
type CollectStats struct {
	Sources              int
	Entries              int64
	Inserted             int64
	Duplicated           int64
	Rejected             int64
	Skipped              int64
	ClassifyErrors       int64
	TranslationFallbacks int64
	Duration             time.Duration
}

// CollectAllSources runs one full cycle over every registered source. A
// failing source is logged and skipped; only context cancellation aborts the
// cycle.
func (s *Service) CollectAllSources(ctx context.Context) (*CollectStats, error) {
	logger := slog.Default()
	startAll := time.Now()
	stats := &CollectStats{}

	srcs, err := s.SourceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	stats.Sources = len(srcs)

	for _, src := range srcs {
		if err := s.processSingleSource(ctx, src, stats); err != nil {
			if ctx.Err() != nil {
				return stats, err
			}
			logger.Error("source processing failed, continuing with next source",
				slog.String("source", src.Name),
				slog.Any("error", err))
		}
	}

	stats.Duration = time.Since(startAll)
	logger.Info("collection cycle completed",
		slog.Int("sources", stats.Sources),
		slog.Int64("entries", stats.Entries),
		slog.Int64("inserted", stats.Inserted),
		slog.Int64("duplicated", stats.Duplicated),
		slog.Int64("rejected", stats.Rejected),
		slog.Int64("skipped", stats.Skipped),
		slog.Int64("classify_errors", stats.ClassifyErrors),
		slog.Int64("translation_fallbacks", stats.TranslationFallbacks),
		slog.Duration("duration", stats.Duration),
	)

	return stats, nil
}

// processSingleSource fetches, normalizes, dedups, and classifies one
// source's entries. Fetch and batch-check failures are logged and the source
// is skipped; only context cancellation propagates.
func (s *Service) processSingleSource(ctx context.Context, src *entity.Source, stats *CollectStats) error {
	logger := slog.Default()
	sourceStart := time.Now()

	entries, err := s.Fetcher.Fetch(ctx, src.URL)
	if err != nil {
		// The cycle context decides abort vs skip. Matching the call error
		// against context.DeadlineExceeded would misread a per-call HTTP
		// client timeout as cycle cancellation.
		if ctx.Err() != nil {
			return err
		}
		logger.Warn("failed to fetch feed",
			slog.String("source", src.Name),
			slog.String("url", src.URL),
			slog.Any("error", err))
		metrics.RecordFeedFetchError(src.Name)
		return nil
	}

	if len(entries) == 0 {
		logger.Info("feed is empty",
			slog.String("source", src.Name),
			slog.String("url", src.URL))
		return nil
	}

	normalized := s.normalizeEntries(src, entries, stats)
	if len(normalized) == 0 {
		return nil
	}

	links := make([]string, 0, len(normalized))
	for _, n := range normalized {
		links = append(links, n.Link)
	}
	existsMap, err := s.ArticleRepo.ExistsByLinkBatch(ctx, links)
	if err != nil {
		logger.Warn("failed to batch check links",
			slog.String("source", src.Name),
			slog.Any("error", err))
		return nil
	}

	beforeInserted := atomic.LoadInt64(&stats.Inserted)

	if err := s.processEntries(ctx, src, normalized, existsMap, stats); err != nil {
		return fmt.Errorf("process entries: %w", err)
	}

	sourceDuration := time.Since(sourceStart)
	metrics.RecordSourceCollectDuration(src.Name, sourceDuration)

	logger.Info("source collection completed",
		slog.String("source", src.Name),
		slog.Int("entries", len(entries)),
		slog.Int64("inserted", atomic.LoadInt64(&stats.Inserted)-beforeInserted),
		slog.Duration("duration", sourceDuration),
	)

	return nil
}

// normalizeEntries cleans raw entries and drops the unusable ones.
func (s *Service) normalizeEntries(src *entity.Source, entries []FeedEntry, stats *CollectStats) []*NormalizedEntry {
	logger := slog.Default()
	now := time.Now()

	normalized := make([]*NormalizedEntry, 0, len(entries))
	for _, e := range entries {
		atomic.AddInt64(&stats.Entries, 1)
		metrics.RecordEntrySeen()

		n, err := NormalizeEntry(e, now)
		if err != nil {
			atomic.AddInt64(&stats.Skipped, 1)
			reason := "missing_fields"
			if errors.Is(err, ErrMissingLink) {
				reason = "missing_link"
			}
			metrics.RecordEntrySkipped(reason)
			logger.Debug("skipping entry",
				slog.String("source", src.Name),
				slog.String("link", e.Link),
				slog.String("reason", reason))
			continue
		}
		normalized = append(normalized, n)
	}
	return normalized
}

// processEntries translates, classifies, and stores new entries in parallel.
//
// Error handling:
//   - Context cancellation propagates immediately and aborts the cycle.
//   - Translation errors keep the original text and continue.
//   - Classification errors reject the entry and continue.
//   - Store errors other than a duplicate link abort this source.
func (s *Service) processEntries(
	ctx context.Context,
	src *entity.Source,
	entries []*NormalizedEntry,
	existsMap map[string]bool,
	stats *CollectStats,
) error {
	logger := slog.Default()
	classifySem := make(chan struct{}, classifierParallelism)
	eg, egCtx := errgroup.WithContext(ctx)

	for _, normEntry := range entries {
		n := normEntry

		if existsMap[n.Link] {
			atomic.AddInt64(&stats.Duplicated, 1)
			metrics.RecordEntrySkipped("duplicate")
			continue
		}

		eg.Go(func() error {
			classifySem <- struct{}{}
			defer func() { <-classifySem }()

			title := n.Title
			description := n.Description
			if !src.IsEnglish() {
				title = s.translateOrKeep(egCtx, src, title, stats)
				description = s.translateOrKeep(egCtx, src, text.Truncate(description, descriptionLimit), stats)
			}

			relevant, err := s.Classifier.Classify(egCtx, title, text.Truncate(description, descriptionLimit))
			if err != nil {
				if egCtx.Err() != nil {
					return err
				}
				atomic.AddInt64(&stats.ClassifyErrors, 1)
				atomic.AddInt64(&stats.Rejected, 1)
				logger.Warn("classification failed, rejecting entry",
					slog.String("source", src.Name),
					slog.String("link", n.Link),
					slog.Any("error", err))
				return nil
			}
			if !relevant {
				atomic.AddInt64(&stats.Rejected, 1)
				return nil
			}

			art := &entity.Article{
				Title:          title,
				Description:    description,
				Link:           n.Link,
				SourceName:     src.Name,
				SourceLanguage: src.Language,
				Country:        src.Country,
				Category:       src.Category,
				PublishedDate:  n.PublishedDate,
				CreatedAt:      time.Now().UTC(),
			}
			if err := s.ArticleRepo.Create(egCtx, art); err != nil {
				if errors.Is(err, entity.ErrDuplicateLink) {
					atomic.AddInt64(&stats.Duplicated, 1)
					metrics.RecordDuplicateLink()
					logger.Info("duplicate link on insert",
						slog.String("source", src.Name),
						slog.String("link", n.Link))
					return nil
				}
				return fmt.Errorf("create article in repository: %w", err)
			}
			atomic.AddInt64(&stats.Inserted, 1)
			metrics.RecordArticleInserted()

			return nil
		})
	}

	return eg.Wait()
}

// translateOrKeep translates text to English and falls back to the original
// on failure. A broken translator must never cost us an article; the
// classifier's keyword gate still sees the original text.
func (s *Service) translateOrKeep(ctx context.Context, src *entity.Source, original string, stats *CollectStats) string {
	translated, err := s.Translator.Translate(ctx, original)
	if err != nil {
		atomic.AddInt64(&stats.TranslationFallbacks, 1)
		metrics.RecordTranslation("fallback")
		slog.Warn("translation failed, keeping original text",
			slog.String("source", src.Name),
			slog.String("language", src.Language),
			slog.Any("error", err))
		return original
	}
	metrics.RecordTranslation("ok")
	return translated
}

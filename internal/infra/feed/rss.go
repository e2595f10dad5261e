// Package feed fetches and parses RSS/Atom feeds. It uses the gofeed library
// with circuit breaker and retry logic around the network call.
package feed

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mmcdole/gofeed"
	"github.com/sony/gobreaker"

	"cryptonews-collector/internal/resilience/circuitbreaker"
	"cryptonews-collector/internal/resilience/retry"
	"cryptonews-collector/internal/usecase/collect"
)

const userAgent = "CryptoNewsCollectorBot"

// RSSFetcher implements collect.Fetcher using the gofeed library.
type RSSFetcher struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
}

// NewRSSFetcher creates a fetcher with the given HTTP client.
func NewRSSFetcher(client *http.Client) *RSSFetcher {
	return &RSSFetcher{
		client:         client,
		circuitBreaker: circuitbreaker.New(circuitbreaker.FeedFetchConfig()),
		retryConfig:    retry.FeedFetchConfig(),
	}
}

// Fetch retrieves and parses a feed from the given URL. Raw timestamps and
// markup pass through untouched; normalization happens downstream.
func (f *RSSFetcher) Fetch(ctx context.Context, feedURL string) ([]collect.FeedEntry, error) {
	var entries []collect.FeedEntry

	retryErr := retry.WithBackoff(ctx, f.retryConfig, func() error {
		cbResult, err := f.circuitBreaker.Execute(func() (interface{}, error) {
			return f.doFetch(ctx, feedURL)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("feed fetch circuit breaker open, request rejected",
					slog.String("url", feedURL),
					slog.String("state", f.circuitBreaker.State().String()))
			}
			return err
		}

		entries = cbResult.([]collect.FeedEntry)
		return nil
	})
	if retryErr != nil {
		return nil, retryErr
	}

	return entries, nil
}

// doFetch performs the actual feed fetch without retry or circuit breaker.
func (f *RSSFetcher) doFetch(ctx context.Context, feedURL string) ([]collect.FeedEntry, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = userAgent
	fp.Client = f.client

	parsed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]collect.FeedEntry, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		entries = append(entries, collect.FeedEntry{
			Title:       it.Title,
			Link:        it.Link,
			Description: it.Description,
			Content:     it.Content,
			Published:   it.PublishedParsed,
			Updated:     it.UpdatedParsed,
		})
	}

	return entries, nil
}

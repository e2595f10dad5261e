// Package entity defines the core domain entities and validation logic for the
// collector: feed sources, accepted articles, and their domain errors.
package entity

import "time"

// Article is a crypto-relevant news article accepted by the pipeline.
// Link is the dedup key: globally unique, enforced by the store's unique
// constraint. PublishedDate falls back to the ingestion time when the feed
// supplies none; CreatedAt is always the ingestion time.
type Article struct {
	ID             int64
	Title          string
	Description    string
	Link           string
	SourceName     string
	SourceLanguage string
	Country        string
	Category       string
	PublishedDate  time.Time
	CreatedAt      time.Time
}

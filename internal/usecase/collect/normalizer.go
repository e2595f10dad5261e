package collect

import (
	"errors"
	"time"

	"cryptonews-collector/internal/utils/text"
)

// FeedEntry represents a single entry from an RSS/Atom feed.
type FeedEntry struct {
	Title       string
	Link        string
	Description string
	Content     string
	Published   *time.Time
	Updated     *time.Time
}

// NormalizedEntry is a feed entry after cleaning, ready for translation and
// classification.
type NormalizedEntry struct {
	Title         string
	Link          string
	Description   string
	PublishedDate time.Time
}

var (
	// ErrMissingLink marks an entry without a link. A link is the dedup key;
	// an entry without one cannot be stored.
	ErrMissingLink = errors.New("entry has no link")

	// ErrMissingFields marks an entry without a usable title or description.
	ErrMissingFields = errors.New("entry has no title or description")
)

// NormalizeEntry cleans a raw feed entry into the canonical shape. Titles and
// descriptions are stripped of HTML and collapsed whitespace. The description
// falls back to the entry content when the feed leaves it empty. Publication
// time prefers the published timestamp, then the updated timestamp, then now;
// all timestamps are normalized to UTC.
func NormalizeEntry(e FeedEntry, now time.Time) (*NormalizedEntry, error) {
	if e.Link == "" {
		return nil, ErrMissingLink
	}

	title := text.Clean(e.Title)
	description := text.Clean(e.Description)
	if description == "" {
		description = text.Clean(e.Content)
	}
	if title == "" || description == "" {
		return nil, ErrMissingFields
	}

	published := now
	switch {
	case e.Published != nil:
		published = *e.Published
	case e.Updated != nil:
		published = *e.Updated
	}

	return &NormalizedEntry{
		Title:         title,
		Link:          e.Link,
		Description:   description,
		PublishedDate: published.UTC(),
	}, nil
}

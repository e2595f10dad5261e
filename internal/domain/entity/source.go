package entity

import "fmt"

// Source is a registered syndication feed endpoint. Name uniquely identifies
// a source in the registry; the collector never mutates registry entries.
type Source struct {
	ID       int64
	Name     string
	URL      string
	Language string // ISO 639-1 code, e.g. "en", "ko", "ja"
	Country  string
	Category string
}

// Validate checks the fields required to poll and attribute a source.
// Language defaults to English when the registry row carries none, so that
// entries from an unlabelled source skip translation rather than crash.
func (s *Source) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Message: "cannot be empty"}
	}
	if s.URL == "" {
		return &ValidationError{Field: "url", Message: "cannot be empty"}
	}
	if s.Language == "" {
		s.Language = "en"
	}
	if len(s.Language) != 2 {
		return &ValidationError{
			Field:   "language",
			Message: fmt.Sprintf("%q is not a two-letter ISO code", s.Language),
		}
	}
	return nil
}

// IsEnglish reports whether entries from this source need no translation.
func (s *Source) IsEnglish() bool {
	return s.Language == "" || s.Language == "en"
}

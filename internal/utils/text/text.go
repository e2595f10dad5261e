// Package text provides text-processing helpers shared by the normalizer and
// the chat-model adapters: HTML stripping, whitespace normalization, and
// rune-safe truncation.
package text

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Clean strips HTML markup from feed-provided text and collapses all runs of
// whitespace to single spaces. Feeds routinely ship descriptions wrapped in
// <p> tags or with embedded <img>/<a> markup; classification prompts want
// plain text.
func Clean(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err == nil {
		s = doc.Text()
	}
	return strings.Join(strings.Fields(s), " ")
}

// Truncate returns at most max runes of s. Counting runes rather than bytes
// keeps multi-byte scripts (Korean, Japanese, Chinese sources) from being cut
// mid-character.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// CountRunes counts Unicode characters, not bytes.
func CountRunes(s string) int {
	return len([]rune(s))
}

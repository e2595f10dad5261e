package relevance

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultLexiconYAML []byte

// Lexicon is the keyword list that gates chat-model verification. An entry
// whose title and description match no term is rejected without a model call.
type Lexicon struct {
	terms []string
}

type lexiconFile struct {
	Groups map[string][]string `yaml:"groups"`
}

// LoadLexicon returns the lexicon from the file at path, or the embedded
// default when path is empty.
func LoadLexicon(path string) (*Lexicon, error) {
	raw := defaultLexiconYAML
	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator config.
		if err != nil {
			return nil, fmt.Errorf("LoadLexicon: %w", err)
		}
		raw = data
	}
	return parseLexicon(raw)
}

func parseLexicon(data []byte) (*Lexicon, error) {
	var file lexiconFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parseLexicon: %w", err)
	}

	seen := make(map[string]struct{})
	var terms []string
	for _, group := range file.Groups {
		for _, term := range group {
			term = strings.ToLower(strings.TrimSpace(term))
			if term == "" {
				continue
			}
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("parseLexicon: lexicon contains no terms")
	}

	sort.Strings(terms)
	return &Lexicon{terms: terms}, nil
}

// Match returns the lexicon terms found in title or description. Matching is
// a case-insensitive substring check; an empty result means the entry never
// reaches the verifier.
func (l *Lexicon) Match(title, description string) []string {
	haystackTitle := strings.ToLower(title)
	haystackDesc := strings.ToLower(description)

	var found []string
	for _, term := range l.terms {
		if strings.Contains(haystackTitle, term) || strings.Contains(haystackDesc, term) {
			found = append(found, term)
		}
	}
	return found
}

// Size returns the number of distinct terms.
func (l *Lexicon) Size() int {
	return len(l.terms)
}

package relevance

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLexicon_EmbeddedDefault(t *testing.T) {
	lex, err := LoadLexicon("")
	if err != nil {
		t.Fatalf("LoadLexicon(\"\") error = %v, want nil", err)
	}
	if lex.Size() == 0 {
		t.Fatal("embedded lexicon has no terms")
	}
}

func TestLoadLexicon_FileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	content := "groups:\n  custom:\n    - hamster coin\n    - moonshot\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadLexicon(path)
	if err != nil {
		t.Fatalf("LoadLexicon(%q) error = %v, want nil", path, err)
	}
	if lex.Size() != 2 {
		t.Errorf("Size() = %d, want 2", lex.Size())
	}
	if got := lex.Match("Hamster Coin rallies", ""); len(got) != 1 {
		t.Errorf("Match() = %v, want one term", got)
	}
}

func TestLoadLexicon_MissingFile(t *testing.T) {
	_, err := LoadLexicon("/nonexistent/lexicon.yaml")
	if err == nil {
		t.Fatal("LoadLexicon() error = nil, want error for missing file")
	}
}

func TestLoadLexicon_EmptyLexicon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(path, []byte("groups: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadLexicon(path)
	if err == nil {
		t.Fatal("LoadLexicon() error = nil, want error for empty lexicon")
	}
}

func TestLexicon_Match(t *testing.T) {
	lex, err := LoadLexicon("")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		title       string
		description string
		wantMatch   bool
	}{
		{
			name:      "term in title",
			title:     "Bitcoin breaks new all-time high",
			wantMatch: true,
		},
		{
			name:        "term in description only",
			title:       "Market update",
			description: "Ethereum staking yields continue to climb",
			wantMatch:   true,
		},
		{
			name:      "case insensitive",
			title:     "BLOCKCHAIN adoption in trade finance",
			wantMatch: true,
		},
		{
			name:      "multi-word term",
			title:     "Central bank pilots distributed ledger settlement",
			wantMatch: true,
		},
		{
			name:        "no crypto content",
			title:       "Local bakery wins award",
			description: "Sourdough was the crowd favorite",
			wantMatch:   false,
		},
		{
			name:      "substring match crosses word boundaries",
			title:     "New methane emission rules",
			wantMatch: true, // "eth" is a substring of "methane"
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lex.Match(tt.title, tt.description)
			if (len(got) > 0) != tt.wantMatch {
				t.Errorf("Match(%q, %q) = %v, want match=%v", tt.title, tt.description, got, tt.wantMatch)
			}
		})
	}
}

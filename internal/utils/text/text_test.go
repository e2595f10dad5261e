package text

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "Bitcoin hits new high",
			want:  "Bitcoin hits new high",
		},
		{
			name:  "html stripped",
			input: "<p>Spot price crossed <b>$100k</b> today.</p>",
			want:  "Spot price crossed $100k today.",
		},
		{
			name:  "nested markup and links",
			input: `<div><a href="https://x.com">Read more</a> about <em>defi</em></div>`,
			want:  "Read more about defi",
		},
		{
			name:  "whitespace collapsed",
			input: "too   many\n\n  spaces\tand tabs",
			want:  "too many spaces and tabs",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "markup only",
			input: "<p></p><br/>",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Clean() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{name: "under limit", input: "short", max: 10, want: "short"},
		{name: "exactly at limit", input: "12345", max: 5, want: "12345"},
		{name: "over limit", input: "123456789", max: 5, want: "12345"},
		{name: "zero limit", input: "anything", max: 0, want: ""},
		{name: "multibyte runes", input: "비트코인 급등", max: 4, want: "비트코인"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}

func TestCountRunes(t *testing.T) {
	if got := CountRunes("비트코인"); got != 4 {
		t.Errorf("CountRunes = %d, want 4", got)
	}
	if got := CountRunes("btc"); got != 3 {
		t.Errorf("CountRunes = %d, want 3", got)
	}
}

package relevance

import "testing"

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     bool
		wantErr  bool
	}{
		{
			name:     "yes after think block",
			response: "<think>clearly a bitcoin article</think>\nYES",
			want:     true,
		},
		{
			name:     "no after think block",
			response: "<think>this is a cooking recipe</think>\nNO",
			want:     false,
		},
		{
			name:     "lowercase verdict is accepted",
			response: "<think>looks relevant</think>\nyes",
			want:     true,
		},
		{
			name:     "extra whitespace around verdict",
			response: "<think>ok</think>\n\n  YES  \n",
			want:     true,
		},
		{
			name:     "multiple think blocks use the last",
			response: "<think>first</think>NO<think>second</think>\nYES",
			want:     true,
		},
		{
			name:     "non-verdict word is an error",
			response: "<think>looks promising</think>Maybe",
			wantErr:  true,
		},
		{
			name:     "verdict embedded in a sentence is an error",
			response: "<think>hmm</think>\nYES, definitely crypto news",
			wantErr:  true,
		},
		{
			name:     "missing think marker is an error",
			response: "YES",
			wantErr:  true,
		},
		{
			name:     "empty response is an error",
			response: "",
			wantErr:  true,
		},
		{
			name:     "nothing after marker is an error",
			response: "<think>analysis only</think>",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVerdict(tt.response)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseVerdict(%q) error = nil, want error", tt.response)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVerdict(%q) error = %v, want nil", tt.response, err)
			}
			if got != tt.want {
				t.Errorf("ParseVerdict(%q) = %v, want %v", tt.response, got, tt.want)
			}
		})
	}
}

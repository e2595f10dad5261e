package entity

import "testing"

func TestSource_Validate(t *testing.T) {
	tests := []struct {
		name    string
		source  Source
		wantErr bool
	}{
		{
			name:   "valid source",
			source: Source{Name: "coindesk", URL: "https://coindesk.com/rss", Language: "en"},
		},
		{
			name:    "missing name",
			source:  Source{URL: "https://coindesk.com/rss"},
			wantErr: true,
		},
		{
			name:    "missing url",
			source:  Source{Name: "coindesk"},
			wantErr: true,
		},
		{
			name:   "empty language defaults to en",
			source: Source{Name: "coindesk", URL: "https://coindesk.com/rss"},
		},
		{
			name:    "three-letter language rejected",
			source:  Source{Name: "coindesk", URL: "https://coindesk.com/rss", Language: "eng"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.source.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSource_Validate_DefaultsLanguage(t *testing.T) {
	src := Source{Name: "coindesk", URL: "https://coindesk.com/rss"}

	if err := src.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
	if src.Language != "en" {
		t.Errorf("Language = %q, want en", src.Language)
	}
}

func TestSource_IsEnglish(t *testing.T) {
	if !(&Source{Language: "en"}).IsEnglish() {
		t.Error("en source not reported as English")
	}
	if !(&Source{}).IsEnglish() {
		t.Error("unlabelled source not reported as English")
	}
	if (&Source{Language: "ko"}).IsEnglish() {
		t.Error("ko source reported as English")
	}
}

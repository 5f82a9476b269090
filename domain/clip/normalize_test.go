package clip

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases",
			input: "Hadouken",
			want:  "hadouken",
		},
		{
			name:  "strips inner spaces",
			input: "Low Kick",
			want:  "lowkick",
		},
		{
			name:  "strips tabs and surrounding whitespace",
			input: "  Shin\tShoryuken ",
			want:  "shinshoryuken",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "digits kept",
			input: "5 HP",
			want:  "5hp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeKey(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
			// Normalizing is idempotent.
			if again := NormalizeKey(got); again != got {
				t.Errorf("NormalizeKey(NormalizeKey(%q)) = %q, want %q", tt.input, again, got)
			}
		})
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "already clean",
			input: "Hadouken",
			want:  "Hadouken",
		},
		{
			name:  "drops spaces and punctuation",
			input: "E. Honda",
			want:  "EHonda",
		},
		{
			name:  "keeps digits",
			input: "214 HK!",
			want:  "214HK",
		},
		{
			name:  "empty falls back",
			input: "",
			want:  "Unknown",
		},
		{
			name:  "only punctuation falls back",
			input: "!!!",
			want:  "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeLabel(tt.input); got != tt.want {
				t.Errorf("SanitizeLabel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

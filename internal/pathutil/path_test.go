package pathutil

import "testing"

func TestSanitizeSegment(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-name", "normal-name"},
		{"name:with:colons", "name_with_colons"},
		{"name<with>brackets", "name_with_brackets"},
		{"name/with\\slashes", "name_with_slashes"},
		{"name|with|pipes", "name_with_pipes"},
		{"name?with*wildcards", "name_with_wildcards"},
		{"name\"with\"quotes", "name_with_quotes"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SanitizeSegment(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeSegment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeSegment_Idempotent(t *testing.T) {
	inputs := []string{
		"Trip: Day 1/2",
		"already clean",
		"dots...",
		"  mixed \\ junk | here  ",
		"",
	}

	for _, input := range inputs {
		once := SanitizeSegment(input)
		twice := SanitizeSegment(once)
		if once != twice {
			t.Errorf("SanitizeSegment not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"photos/2020", "photos/2020"},
		{"photos/2020/", "photos/2020"},
		{`photos\2020\paris`, "photos/2020/paris"},
		{"  photos/2020  ", "photos/2020"},
		{"", ""},
		{"/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizePath(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePath_KeepsSeparators(t *testing.T) {
	// A joined path must never have its slashes sanitized away.
	got := NormalizePath("2020/Paris/Best")
	if got != "2020/Paris/Best" {
		t.Errorf("NormalizePath corrupted separators: %q", got)
	}
}

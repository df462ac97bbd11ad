package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "CNN", "cnn"},
		{"punctuation removed", "Fox-News.com!", "foxnewscom"},
		{"whitespace trimmed", "  bbc news  ", "bbc news"},
		{"inner whitespace kept", "new york times", "new york times"},
		{"all punctuation", "?!.,;:", ""},
		{"empty", "", ""},
		{"unicode untouched", "télévision", "télévision"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"USA!", "  United Kingdom  ", "foo.bar", "already normal"}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)

		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("a  b\t c"); got != "a b c" {
		t.Errorf("CollapseWhitespace = %q, want %q", got, "a b c")
	}
}

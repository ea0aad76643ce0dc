package text

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text untouched",
			input:    "The quick brown fox.",
			expected: "The quick brown fox.",
		},
		{
			name:     "whitespace runs collapse",
			input:    "  The \t quick\n\nbrown   fox  ",
			expected: "The quick brown fox",
		},
		{
			name:     "hyphenated line break rejoined",
			input:    "under- standing",
			expected: "under-standing",
		},
		{
			name:     "hyphenation across newline",
			input:    "state - of - the\n- art",
			expected: "state-of-the-art",
		},
		{
			name:  "page number token removed",
			input: "before Page 12 after",
			// Removing the token leaves the surrounding spaces behind.
			expected: "before  after",
		},
		{
			name:     "page number at end",
			input:    "chapter one Page 3",
			expected: "chapter one",
		},
		{
			name:     "page requires digits",
			input:    "Page layout matters",
			expected: "Page layout matters",
		},
		{
			name:     "non printable replaced by space",
			input:    "café au lait",
			expected: "caf  au lait",
		},
		{
			// The worked example: rules run in order, so the curly quotes
			// are already spaces by the time quote normalization runs.
			name:     "combined artifacts",
			input:    "Hello\n\nPage 3   World’s  “Best”",
			expected: "Hello  World s  Best",
		},
		{
			name:     "straight quotes preserved",
			input:    `she said "hi" and 'bye'`,
			expected: `she said "hi" and 'bye'`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    " \n\t ",
			expected: "",
		},
		{
			name:     "unicode space collapses",
			input:    "a  b",
			expected: "a b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	// Idempotence holds for text that does not contain removable tokens;
	// token removal can leave a double space a second pass would collapse.
	inputs := []string{
		"The quick brown fox.",
		"  lots \n of\twhitespace  ",
		"hyphen - ated words",
		"café corner",
		"",
		"already clean text with \"quotes\" and 'apostrophes'",
	}

	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

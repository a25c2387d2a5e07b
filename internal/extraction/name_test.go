package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"first line plain name", "John Smith\njohn@x.com", "John Smith"},
		{"first line three words", "Mary Jane Watson\nDesigner", "Mary Jane Watson"},
		{"labeled name", "RESUME 2024\nName: Jane Doe\njane@x.com", "Jane Doe"},
		{"candidate label", "Application\nCandidate: Bob Brown", "Bob Brown"},
		{"capitalized line fallback", "123 Main St\nJohn Smith\nEngineer", "John Smith"},
		{"single word rejected", "Resume\n", ""},
		{"too many words rejected", "one two three four five six", ""},
		{"empty input", "", ""},
		{"whitespace collapsed", "  John   Smith  \n", "John Smith"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractName(tt.input))
		})
	}
}

func TestExtractNameFirstStrategyWins(t *testing.T) {
	// Strategy 1 short-circuits: the label on a later line is never reached.
	input := "John Smith\nName: Somebody Else"
	assert.Equal(t, "John Smith", ExtractName(input))
}

func TestExtractNameKnownMisfire(t *testing.T) {
	// Documented precision limitation: a first line that happens to look
	// like a name is accepted without any confidence signal.
	input := "Senior Engineer\nActual Name\n"
	assert.Equal(t, "Senior Engineer", ExtractName(input))
}

package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"crlf to lf", "John Smith\r\nEngineer", "John Smith\nEngineer"},
		{"bare cr to lf", "John Smith\rEngineer", "John Smith\nEngineer"},
		{"tabs become spaces", "Go\tPython\tSQL", "Go Python SQL"},
		{"space runs collapse", "Senior    Engineer", "Senior Engineer"},
		{"tab and space run collapses once", "Senior \t  Engineer", "Senior Engineer"},
		{"camel boundary split", "SeniorEngineer atAcme", "Senior Engineer at Acme"},
		{"newlines preserved", "line one\n\nline two", "line one\n\nline two"},
		{"already clean is untouched", "John Smith\nSenior Engineer", "John Smith\nSenior Engineer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	inputs := []string{
		"John Smith\r\n\tSenior Engineer",
		"Experience\nAcmeCorp   2019-2022",
		"",
		"plain text with no noise",
	}

	for _, input := range inputs {
		once := NormalizeText(input)
		twice := NormalizeText(once)
		assert.Equal(t, once, twice, "normalizing twice must equal normalizing once")
	}
}

func TestLines(t *testing.T) {
	lines := Lines("  John Smith  \n\n Senior Engineer ")
	assert.Equal(t, []string{"John Smith", "", "Senior Engineer"}, lines)
}

func TestIsDecodeFallback(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty", "", true},
		{"very short", "John", true},
		{"placeholder", DecodeFallbackText, true},
		{"real resume text", "John Smith\njohn@x.com\nSenior Engineer with ten years of experience building services.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDecodeFallback(tt.input))
		})
	}
}

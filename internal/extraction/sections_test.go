package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyHeading(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Section
	}{
		{"bare experience", "Experience", SectionExperience},
		{"professional experience", "PROFESSIONAL EXPERIENCE", SectionExperience},
		{"work history", "Work History", SectionExperience},
		{"education", "Education", SectionEducation},
		{"skills", "Technical Skills", SectionSkills},
		{"certifications", "Certifications", SectionCertifications},
		{"languages", "Languages", SectionLanguages},
		{"summary", "Professional Summary", SectionSummary},
		{"objective", "Objective", SectionSummary},
		{"plain text line", "Led a team of 5 engineers", SectionNone},
		{"blank line", "", SectionNone},
		{"too long to be a heading", "experience " + string(make([]byte, 100)), SectionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyHeading(tt.line))
		})
	}
}

func TestScanSectionsSingleOpenSection(t *testing.T) {
	lines := []string{
		"John Smith",
		"Experience",
		"Senior Engineer",
		"Acme Corp",
		"Education",
		"BS Computer Science",
		"Skills",
		"Go, Python",
	}

	sections := scanSections(lines)

	assert.Equal(t, []string{"Senior Engineer", "Acme Corp"}, sections[SectionExperience])
	assert.Equal(t, []string{"BS Computer Science"}, sections[SectionEducation])
	assert.Equal(t, []string{"Go, Python"}, sections[SectionSkills])
	assert.Empty(t, sections[SectionSummary])
}

func TestScanSectionsPreambleIgnored(t *testing.T) {
	lines := []string{"John Smith", "john@x.com", "some free text"}
	sections := scanSections(lines)
	assert.Empty(t, sections)
}

func TestSectionString(t *testing.T) {
	assert.Equal(t, "experience", SectionExperience.String())
	assert.Equal(t, "none", SectionNone.String())
}

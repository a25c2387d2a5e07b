package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEducationDegreeTrigger(t *testing.T) {
	lines := []string{
		"BS Computer Science",
		"State University",
		"2018",
	}

	records := parseEducation(lines)

	require.Len(t, records, 1)
	assert.Equal(t, "BS Computer Science", records[0].Degree)
	assert.Equal(t, "State University", records[0].Institution)
	assert.Equal(t, "2018", records[0].Year)
}

func TestParseEducationYearTrigger(t *testing.T) {
	lines := []string{
		"2015",
		"Community College of Denver",
	}

	records := parseEducation(lines)

	require.Len(t, records, 1)
	assert.Equal(t, "2015", records[0].Year)
	assert.Equal(t, "Community College of Denver", records[0].Institution)
	assert.Empty(t, records[0].Degree)
}

func TestParseEducationGPA(t *testing.T) {
	lines := []string{
		"Master of Science in Data Science",
		"Tech Institute, GPA: 3.85",
	}

	records := parseEducation(lines)

	require.Len(t, records, 1)
	assert.Equal(t, "3.85", records[0].GPA)
	assert.Contains(t, records[0].Institution, "Tech Institute")
}

func TestParseEducationMultipleRecords(t *testing.T) {
	lines := []string{
		"MS Computer Science",
		"State University",
		"BS Mathematics",
		"Liberal Arts College",
	}

	records := parseEducation(lines)

	require.Len(t, records, 2)
	assert.Equal(t, "MS Computer Science", records[0].Degree)
	assert.Equal(t, "BS Mathematics", records[1].Degree)
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func TestParseEducationSecondYearStartsNewRecord(t *testing.T) {
	lines := []string{
		"2015",
		"Community College of Denver",
		"2019",
		"State University",
	}

	records := parseEducation(lines)

	require.Len(t, records, 2)
	assert.Equal(t, "2015", records[0].Year)
	assert.Equal(t, "Community College of Denver", records[0].Institution)
	assert.Equal(t, "2019", records[1].Year)
	assert.Equal(t, "State University", records[1].Institution)
}

func TestParseEducationCap(t *testing.T) {
	var lines []string
	for i := 0; i < 8; i++ {
		lines = append(lines, "Bachelor of Arts", "Some University")
	}

	records := parseEducation(lines)
	assert.Len(t, records, maxEducationRecords)
}

func TestParseEducationFieldLengthCap(t *testing.T) {
	lines := []string{"Bachelor " + strings.Repeat("x", 300)}

	records := parseEducation(lines)

	require.Len(t, records, 1)
	assert.Len(t, records[0].Degree, maxEducationField)
}

func TestParseEducationEmpty(t *testing.T) {
	assert.Empty(t, parseEducation(nil))
	assert.Empty(t, parseEducation([]string{"no triggers here"}))
}

package extraction

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExperienceTitleFirstLayout(t *testing.T) {
	lines := []string{
		"Senior Engineer",
		"Acme Corp",
		"2019-2022",
		"• Led a team of 5",
	}

	records := parseExperience(lines)

	require.Len(t, records, 1)
	assert.Equal(t, "Senior Engineer", records[0].Position)
	assert.Equal(t, "Acme Corp", records[0].Company)
	assert.Equal(t, "2019-2022", records[0].Years)
	assert.Equal(t, []string{"Led a team of 5"}, records[0].Achievements)
}

func TestParseExperienceDateFirstLayout(t *testing.T) {
	lines := []string{
		"2020 - Present",
		"Staff Engineer",
		"Initech",
		"- Cut deploy time in half",
		"2016-2020",
		"Software Engineer",
		"Globex",
	}

	records := parseExperience(lines)

	require.Len(t, records, 2)
	assert.Equal(t, "Staff Engineer", records[0].Position)
	assert.Equal(t, "Initech", records[0].Company)
	assert.Equal(t, "2020 - Present", records[0].Years)
	assert.Equal(t, []string{"Cut deploy time in half"}, records[0].Achievements)
	assert.Equal(t, "Software Engineer", records[1].Position)
	assert.Equal(t, "2016-2020", records[1].Years)
}

func TestParseExperienceDateWinsOverTitle(t *testing.T) {
	// A line that could read as both a date and a title is always a date.
	lines := []string{
		"Engineer at Acme",
		"Jan 2019 Lead Developer",
	}

	records := parseExperience(lines)

	require.Len(t, records, 1)
	assert.Equal(t, "Engineer at Acme", records[0].Position)
	assert.Equal(t, "Jan 2019 Lead Developer", records[0].Years)
}

func TestParseExperienceClassificationRules(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"normal title", "Senior Software Engineer", true},
		{"too short", "Dev", false},
		{"contains email", "engineer@acme.com applied", false},
		{"contains url", "see http://acme.com for details", false},
		{"starts with digit", "3rd Line Support Engineer", false},
		{"too many words", "one two three four five six seven eight nine ten eleven", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikePosition(tt.line))
		})
	}
}

func TestParseExperienceDiscardsPositionless(t *testing.T) {
	lines := []string{
		"2019-2022",
		// no position line before next trigger
		"2015-2019",
		"Software Engineer",
		"Acme",
	}

	records := parseExperience(lines)

	require.Len(t, records, 1)
	assert.Equal(t, "Software Engineer", records[0].Position)
}

func TestParseExperienceCaps(t *testing.T) {
	var lines []string
	for i := 0; i < 12; i++ {
		lines = append(lines,
			fmt.Sprintf("200%d-201%d", i%10, i%10),
			"Software Engineer",
			"Acme Corp",
		)
	}

	records := parseExperience(lines)
	assert.Len(t, records, maxExperienceRecords)
}

func TestParseExperienceAchievementAndDescriptionCaps(t *testing.T) {
	lines := []string{
		"Senior Engineer",
		"Acme Corp",
	}
	for i := 0; i < 8; i++ {
		lines = append(lines, fmt.Sprintf("• achievement number %d", i))
	}
	long := "this description line is definitely longer than twenty characters"
	for i := 0; i < 20; i++ {
		lines = append(lines, long)
	}

	records := parseExperience(lines)

	require.Len(t, records, 1)
	assert.Len(t, records[0].Achievements, maxAchievements)
	assert.LessOrEqual(t, len(records[0].Description), maxDescriptionLength)
}

func TestParseExperiencePositionalIDsUnique(t *testing.T) {
	lines := []string{
		"2019-2022", "Engineer One", "Acme",
		"2015-2019", "Engineer Two", "Globex",
	}

	records := parseExperience(lines)

	require.Len(t, records, 2)
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func TestParseExperienceEmptyInput(t *testing.T) {
	assert.Empty(t, parseExperience(nil))
	assert.Empty(t, parseExperience([]string{"", "  "}))
}

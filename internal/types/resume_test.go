package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsedResumeFullyShaped(t *testing.T) {
	resume := NewParsedResume()

	assert.NotNil(t, resume.Experience)
	assert.NotNil(t, resume.Education)
	assert.NotNil(t, resume.Skills)
	assert.NotNil(t, resume.Certifications)
	assert.NotNil(t, resume.Languages)
}

func TestParsedResumeSerializesWithoutNulls(t *testing.T) {
	resume := NewParsedResume()

	data, err := json.Marshal(resume)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "null", "empty resume must serialize collections as [], not null")
	assert.Contains(t, string(data), `"fullName":""`)
	assert.Contains(t, string(data), `"experience":[]`)
}

func TestParsedResumeRoundTrip(t *testing.T) {
	resume := NewParsedResume()
	resume.Personal.FullName = "Jane Doe"
	resume.Experience = append(resume.Experience, ExperienceRecord{
		ID:           "exp-1",
		Position:     "Senior Engineer",
		Company:      "Acme Corp",
		Years:        "2019-2022",
		Achievements: []string{"Led a team of 5"},
	})

	data, err := json.Marshal(resume)
	require.NoError(t, err)

	var decoded ParsedResume
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *resume, decoded)
}

func TestNewATSAnalysisFullyShaped(t *testing.T) {
	analysis := NewATSAnalysis()

	data, err := json.Marshal(analysis)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"matchedKeywords":[]`)
	assert.Contains(t, string(data), `"missingKeywords":[]`)
	assert.Contains(t, string(data), `"suggestions":[]`)
	assert.Contains(t, string(data), `"risks":[]`)
}

package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPrompt(t *testing.T) {
	schema := ExtractionSchema{
		Name:        "Test",
		Description: "Extract the fields below.",
		Fields: []SchemaField{
			{Name: "role", Type: "\"string\"", Description: "job title", Required: true},
			{Name: "keywords", Type: "[\"string\"]"},
		},
	}

	prompt := BuildExtractionPrompt(schema, "some posting text")

	assert.True(t, strings.HasPrefix(prompt, "Extract the fields below."))
	assert.Contains(t, prompt, `"role": "string" (required) // job title,`)
	assert.Contains(t, prompt, `"keywords": ["string"]`)
	assert.Contains(t, prompt, "Return ONLY valid JSON")
	assert.Contains(t, prompt, "some posting text")

	// Only the last field line is rendered without a trailing comma.
	assert.NotContains(t, prompt, `["string"],`)
}

func TestBuildExtractionPrompt_DefaultTypeHint(t *testing.T) {
	schema := ExtractionSchema{
		Description: "Extract.",
		Fields:      []SchemaField{{Name: "company"}},
	}

	prompt := BuildExtractionPrompt(schema, "text")
	assert.Contains(t, prompt, `"company": string`)
}

func TestJobKeywordsSchema(t *testing.T) {
	schema := JobKeywordsSchema()

	assert.Equal(t, "JobKeywords", schema.Name)
	assert.Contains(t, schema.Description, "VERBATIM")
	assert.Len(t, schema.Fields, 3)
	assert.Equal(t, "role", schema.Fields[0].Name)
	assert.True(t, schema.Fields[0].Required)
	assert.False(t, schema.Fields[2].Required)
}

// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema describes a structured extraction task: what to pull out
// of free text and the JSON shape the model must return.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "JobKeywords")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		sb.WriteString(fieldLine(field, i == len(schema.Fields)-1))
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// fieldLine renders one schema field as a line of the JSON skeleton shown
// to the model.
func fieldLine(field SchemaField, last bool) string {
	typeHint := field.Type
	if typeHint == "" {
		typeHint = "string"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  %q: %s", field.Name, typeHint))
	if field.Required {
		sb.WriteString(" (required)")
	}
	if field.Description != "" {
		sb.WriteString(" // ")
		sb.WriteString(field.Description)
	}
	if !last {
		sb.WriteString(",")
	}
	sb.WriteString("\n")
	return sb.String()
}

// JobKeywordsSchema returns the extraction schema for job postings.
// Extracts the screening keywords a resume would be matched against, plus
// the role title for dictionary selection.
func JobKeywordsSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JobKeywords",
		Description: `You are an expert job posting parser. COPY TERMS VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract the concrete skills and technologies an applicant tracking system would screen resumes for.
IMPORTANT: Preserve the exact wording from the original text.
EXCLUDE: Application form fields, EEO statements, legal disclaimers, benefits, generic "About Company" boilerplate.`,
		Fields: []SchemaField{
			{
				Name:        "role",
				Type:        "\"string\"",
				Description: "The job title as written in the posting",
				Required:    true,
			},
			{
				Name:        "keywords",
				Type:        "[\"string\"]",
				Description: "Skills, technologies, and qualifications named in the posting - copy each term verbatim, lowercase",
				Required:    true,
			},
			{
				Name:        "nice_to_have",
				Type:        "[\"string\"]",
				Description: "Preferred skills and nice-to-have qualifications - copy verbatim, lowercase",
				Required:    false,
			},
		},
	}
}

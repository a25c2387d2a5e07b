package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validate "github.com/jonathan/resume-insight/internal/schemas"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		"parsed_resume.schema.json",
		"ats_analysis.schema.json",
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestEmbeddedSchemasMatchFiles(t *testing.T) {
	cases := map[string]string{
		"parsed_resume.schema.json": ParsedResume,
		"ats_analysis.schema.json":  ATSAnalysis,
	}

	for file, embedded := range cases {
		t.Run(file, func(t *testing.T) {
			data, err := os.ReadFile(file)
			require.NoError(t, err)
			assert.Equal(t, string(data), embedded)
		})
	}
}

func TestATSAnalysisSchema_AcceptsValidDocument(t *testing.T) {
	doc := `{
		"score": 72,
		"breakdown": {"keywords": 60, "formatting": 85, "content": 70, "impact": 75},
		"matchedKeywords": ["python", "docker"],
		"missingKeywords": ["kubernetes"],
		"suggestions": ["Add the missing basics."],
		"risks": []
	}`

	err := validate.ValidateJSONString(ATSAnalysis, doc)
	assert.NoError(t, err)
}

func TestATSAnalysisSchema_RejectsOutOfRangeScore(t *testing.T) {
	doc := `{
		"score": 140,
		"breakdown": {"keywords": 60, "formatting": 85, "content": 70, "impact": 75},
		"matchedKeywords": [],
		"missingKeywords": [],
		"suggestions": [],
		"risks": []
	}`

	err := validate.ValidateJSONString(ATSAnalysis, doc)
	require.Error(t, err)

	var verr *validate.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
}

func TestATSAnalysisSchema_RejectsMissingBreakdown(t *testing.T) {
	doc := `{
		"score": 50,
		"matchedKeywords": [],
		"missingKeywords": [],
		"suggestions": [],
		"risks": []
	}`

	err := validate.ValidateJSONString(ATSAnalysis, doc)
	assert.Error(t, err)
}

func TestParsedResumeSchema_AcceptsEmptyShape(t *testing.T) {
	doc := `{
		"personal": {"fullName": "", "email": "", "phone": "", "location": "", "linkedin": "", "github": "", "website": ""},
		"summary": "",
		"experience": [],
		"education": [],
		"skills": [],
		"certifications": [],
		"languages": []
	}`

	err := validate.ValidateJSONString(ParsedResume, doc)
	assert.NoError(t, err)
}

func TestParsedResumeSchema_EnforcesCaps(t *testing.T) {
	skills, err := json.Marshal(make([]string, 31))
	require.NoError(t, err)

	doc := `{
		"personal": {"fullName": "", "email": "", "phone": "", "location": "", "linkedin": "", "github": "", "website": ""},
		"summary": "",
		"experience": [],
		"education": [],
		"skills": ` + string(skills) + `,
		"certifications": [],
		"languages": []
	}`

	err = validate.ValidateJSONString(ParsedResume, doc)
	assert.Error(t, err, "more than 30 skills should fail validation")
}

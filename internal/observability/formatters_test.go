package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-insight/internal/types"
)

func TestPrintParsedResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := types.NewParsedResume()
	resume.Personal.FullName = "Jane Doe"
	resume.Personal.Email = "jane@example.com"
	resume.Experience = []types.ExperienceRecord{
		{ID: "exp-1", Position: "Senior Engineer", Company: "Acme Corp", Years: "2019 - Present"},
	}
	resume.Education = []types.EducationRecord{
		{ID: "edu-1", Degree: "B.S. Computer Science", Institution: "State University"},
	}
	resume.Skills = []string{"python", "docker"}

	p.PrintParsedResume(resume)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Senior Engineer @ Acme Corp")
	assert.Contains(t, output, "B.S. Computer Science")
	assert.Contains(t, output, "python, docker")
}

func TestPrintParsedResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintParsedResume_EmptyFieldsShowDash(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedResume(types.NewParsedResume())
	output := buf.String()

	assert.Contains(t, output, "Name:     -")
	assert.Contains(t, output, "Email:    -")
}

func TestPrintConfidence(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintConfidence(types.ExtractionConfidence{
		Overall:    0.72,
		Personal:   1.0,
		Experience: 0.5,
	})
	output := buf.String()

	assert.Contains(t, output, "EXTRACTION CONFIDENCE")
	assert.Contains(t, output, "0.72")
	assert.Contains(t, output, "1.00")
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := types.NewATSAnalysis()
	analysis.Score = 68
	analysis.Breakdown = types.ScoreBreakdown{Keywords: 55, Formatting: 90, Content: 60, Impact: 70}
	analysis.MissingKeywords = []string{"kubernetes"}
	analysis.Suggestions = []string{"Add container experience."}
	analysis.Risks = []string{"Low keyword match."}

	p.PrintAnalysis(analysis, "rule-based")
	output := buf.String()

	assert.Contains(t, output, "ATS ANALYSIS")
	assert.Contains(t, output, "68/100")
	assert.Contains(t, output, "rule-based")
	assert.Contains(t, output, "kubernetes")
	assert.Contains(t, output, "Add container experience.")
	assert.Contains(t, output, "! Low keyword match.")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(nil, "rule-based")

	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))
	output := buf.String()

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth, "box lines should stay within width")
	}
	assert.Contains(t, output, "...")
}

func TestConfidenceBar_Bounds(t *testing.T) {
	assert.Contains(t, confidenceBar(-0.5), "0.00")
	assert.Contains(t, confidenceBar(1.5), "1.00")
	assert.Contains(t, confidenceBar(0.5), "0.50")
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedResume outputs a human-readable summary of the extraction result.
func (p *Printer) PrintParsedResume(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(resume.Personal.FullName)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(resume.Personal.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(resume.Personal.Phone)))
	sb.WriteString(fmt.Sprintf("Location: %s\n", orDash(resume.Personal.Location)))
	sb.WriteString("\n")

	if len(resume.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(resume.Experience)))
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := resume.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", exp.Position))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", exp.Company))
			}
			if exp.Years != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", exp.Years))
			}
			sb.WriteString("\n")
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education (%d):\n", len(resume.Education)))
		for _, edu := range resume.Education {
			sb.WriteString(fmt.Sprintf("  • %s", edu.Degree))
			if edu.Institution != "" {
				sb.WriteString(fmt.Sprintf(", %s", edu.Institution))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(resume.Skills) > 0 {
		skills := strings.Join(resume.Skills, ", ")
		if len(skills) > 48 {
			skills = skills[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", skills))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintConfidence outputs the extraction confidence breakdown.
func (p *Printer) PrintConfidence(confidence types.ExtractionConfidence) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:    %s\n", confidenceBar(confidence.Overall)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Personal:   %s\n", confidenceBar(confidence.Personal)))
	sb.WriteString(fmt.Sprintf("Summary:    %s\n", confidenceBar(confidence.Summary)))
	sb.WriteString(fmt.Sprintf("Experience: %s\n", confidenceBar(confidence.Experience)))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", confidenceBar(confidence.Education)))
	sb.WriteString(fmt.Sprintf("Skills:     %s\n", confidenceBar(confidence.Skills)))

	p.printBox("EXTRACTION CONFIDENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs the ATS analysis with breakdown and coaching.
func (p *Printer) PrintAnalysis(analysis *types.ATSAnalysis, strategy string) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:      %d/100  (strategy: %s)\n", analysis.Score, strategy))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Keywords:   %3d\n", analysis.Breakdown.Keywords))
	sb.WriteString(fmt.Sprintf("Formatting: %3d\n", analysis.Breakdown.Formatting))
	sb.WriteString(fmt.Sprintf("Content:    %3d\n", analysis.Breakdown.Content))
	sb.WriteString(fmt.Sprintf("Impact:     %3d\n", analysis.Breakdown.Impact))

	if len(analysis.MissingKeywords) > 0 {
		sb.WriteString("\nMissing keywords:\n")
		count := min(len(analysis.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.MissingKeywords[i]))
		}
	}

	if len(analysis.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, suggestion := range analysis.Suggestions {
			sb.WriteString(fmt.Sprintf("  • %s\n", suggestion))
		}
	}

	if len(analysis.Risks) > 0 {
		sb.WriteString("\nRisks:\n")
		for _, risk := range analysis.Risks {
			sb.WriteString(fmt.Sprintf("  ! %s\n", risk))
		}
	}

	p.printBox("ATS ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// confidenceBar renders a 0-1 score as a ten-segment bar with the value.
func confidenceBar(score float64) string {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	filled := int(score*10 + 0.5)
	return fmt.Sprintf("%s%s %.2f", strings.Repeat("█", filled), strings.Repeat("░", 10-filled), score)
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

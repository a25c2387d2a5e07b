package extraction

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

const (
	maxEducationRecords = 5
	maxEducationField   = 200
)

var (
	degreeRe   = regexp.MustCompile(`(?i)\b(b\.?s\.?c?|b\.?a\.?|m\.?s\.?c?|m\.?a\.?|mba|ph\.?d\.?|bachelor|master|doctorate|associate|diploma)\b`)
	bareYearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	gpaRe      = regexp.MustCompile(`(?i)gpa[:\s]*(\d+\.?\d*)`)
)

// parseEducation folds the education-section lines into records. A new
// record starts on a degree-pattern match or a bare 4-digit year, whichever
// a line hits first. Later lines fill institution and gpa.
func parseEducation(lines []string) []types.EducationRecord {
	records := []types.EducationRecord{}
	var current *types.EducationRecord

	flush := func() {
		if current != nil && (current.Degree != "" || current.Institution != "") {
			current.ID = fmt.Sprintf("edu-%d", len(records)+1)
			records = append(records, *current)
		}
		current = nil
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		isDegree := degreeRe.MatchString(line)
		year := bareYearRe.FindString(line)

		switch {
		case isDegree:
			flush()
			current = &types.EducationRecord{
				Degree: truncate(line, maxEducationField),
			}
			if year != "" {
				current.Year = year
			}

		case year != "" && (current == nil || current.Year != ""):
			// A second year while a record is open means a new entry.
			flush()
			current = &types.EducationRecord{
				Year: year,
			}

		case current != nil:
			if current.Institution == "" && looksLikeInstitution(line) {
				current.Institution = truncate(line, maxEducationField)
			}
			if current.Year == "" && year != "" {
				current.Year = year
			}
		}

		if current != nil && current.GPA == "" {
			if match := gpaRe.FindStringSubmatch(line); match != nil {
				current.GPA = match[1]
			}
		}
	}
	flush()

	if len(records) > maxEducationRecords {
		records = records[:maxEducationRecords]
	}
	return records
}

// looksLikeInstitution accepts a line containing an institution keyword, or
// any reasonably short line (at most 8 words).
func looksLikeInstitution(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range institutionKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return len(strings.Fields(line)) <= 8
}

func truncate(s string, capLen int) string {
	if len(s) > capLen {
		return s[:capLen]
	}
	return s
}

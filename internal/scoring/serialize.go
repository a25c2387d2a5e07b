package scoring

import (
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

// serializeResume flattens every textual field of a resume into one
// lowercase string for substring matching and word counting. The exact field
// order does not matter to any score, only the content.
func serializeResume(resume *types.ParsedResume) string {
	var sb strings.Builder

	write := func(parts ...string) {
		for _, part := range parts {
			if part != "" {
				sb.WriteString(part)
				sb.WriteString(" ")
			}
		}
	}

	p := resume.Personal
	write(p.FullName, p.Email, p.Phone, p.Location, p.LinkedIn, p.GitHub, p.Website)
	write(resume.Summary)

	for _, exp := range resume.Experience {
		write(exp.Position, exp.Company, exp.Years, exp.Description)
		write(exp.Achievements...)
	}
	for _, edu := range resume.Education {
		write(edu.Degree, edu.Institution, edu.Year, edu.GPA)
	}
	write(resume.Skills...)
	write(resume.Certifications...)
	write(resume.Languages...)

	return strings.ToLower(strings.TrimSpace(sb.String()))
}

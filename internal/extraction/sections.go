package extraction

import "strings"

// Section identifies which resume section a line range belongs to.
// Exactly one section is open at a time while scanning.
type Section int

// Section values, in the order sections typically appear.
const (
	SectionNone Section = iota
	SectionSummary
	SectionExperience
	SectionEducation
	SectionSkills
	SectionCertifications
	SectionLanguages
)

// String returns the section name for logging and debugging.
func (s Section) String() string {
	switch s {
	case SectionSummary:
		return "summary"
	case SectionExperience:
		return "experience"
	case SectionEducation:
		return "education"
	case SectionSkills:
		return "skills"
	case SectionCertifications:
		return "certifications"
	case SectionLanguages:
		return "languages"
	default:
		return "none"
	}
}

// maxHeadingLength is the longest line still considered a possible heading.
const maxHeadingLength = 100

// maxHeadingWords keeps prose that merely mentions a keyword ("Experienced
// engineer with...") from reading as a heading.
const maxHeadingWords = 5

// classifyOrder is the fixed order headings are tested in. Experience is
// tested before summary so "professional experience" does not match the
// summary's "professional" vocabulary first.
var classifyOrder = []Section{
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionCertifications,
	SectionLanguages,
	SectionSummary,
}

// classifyHeading returns the section a line opens, or SectionNone when the
// line is not a heading. A heading is shorter than 100 chars and contains one
// of the section's keywords, case-insensitively.
func classifyHeading(line string) Section {
	if len(line) >= maxHeadingLength {
		return SectionNone
	}
	lower := strings.ToLower(strings.TrimSpace(line))
	if lower == "" || len(strings.Fields(lower)) > maxHeadingWords {
		return SectionNone
	}
	for _, section := range classifyOrder {
		for _, keyword := range sectionKeywords[section] {
			if strings.Contains(lower, keyword) {
				return section
			}
		}
	}
	return SectionNone
}

// scanSections walks the lines once and collects the body lines of each
// section. The heading line itself is not part of the body. A heading for a
// different section closes the currently open one.
func scanSections(lines []string) map[Section][]string {
	bodies := make(map[Section][]string)
	current := SectionNone

	for _, line := range lines {
		if section := classifyHeading(line); section != SectionNone {
			current = section
			continue
		}
		if current != SectionNone {
			bodies[current] = append(bodies[current], line)
		}
	}

	return bodies
}

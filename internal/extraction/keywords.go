package extraction

import (
	"strings"
	"unicode"
)

const (
	maxSkills         = 30
	maxCertifications = 10
	maxLanguages      = 10
	minTokenLength    = 2
	maxTokenLength    = 49
)

// skillDelimiters is the character class skill-section lines split on.
const skillDelimiters = ",•·|;/\t"

// extractSkills merges two strategies into one deduplicated set: tokens
// split out of the skills section, and dictionary hits found anywhere in the
// text. Insertion order is kept for stable output.
func extractSkills(sectionLines []string, fullText string) []string {
	skills := []string{}
	seen := make(map[string]bool)

	add := func(token string) {
		token = strings.TrimSpace(token)
		if !isKeywordToken(token) {
			return
		}
		key := strings.ToLower(token)
		if seen[key] || len(skills) >= maxSkills {
			return
		}
		seen[key] = true
		skills = append(skills, token)
	}

	for _, line := range sectionLines {
		for _, token := range splitOnDelimiters(line) {
			add(token)
		}
	}

	lower := strings.ToLower(fullText)
	for _, skill := range commonSkills {
		if strings.Contains(lower, skill) {
			add(skill)
		}
	}

	return skills
}

// extractCertifications takes delimiter-split tokens from the certifications
// section only; there is no whole-text dictionary for certs.
func extractCertifications(sectionLines []string) []string {
	certs := []string{}
	seen := make(map[string]bool)

	for _, line := range sectionLines {
		for _, token := range splitOnDelimiters(line) {
			token = strings.TrimSpace(token)
			if !isKeywordToken(token) {
				continue
			}
			key := strings.ToLower(token)
			if seen[key] || len(certs) >= maxCertifications {
				continue
			}
			seen[key] = true
			certs = append(certs, token)
		}
	}

	return certs
}

// extractLanguages scans the whole text against the known-languages
// dictionary. Section placement is irrelevant; "French" in a summary counts.
func extractLanguages(fullText string) []string {
	languages := []string{}
	lower := strings.ToLower(fullText)

	for _, lang := range knownLanguages {
		if len(languages) >= maxLanguages {
			break
		}
		if strings.Contains(lower, lang) {
			// Title-case for presentation
			languages = append(languages, strings.ToUpper(lang[:1])+lang[1:])
		}
	}

	return languages
}

func splitOnDelimiters(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(skillDelimiters, r)
	})
}

// isKeywordToken rejects tokens that are too short, too long, pure digits,
// or pure punctuation.
func isKeywordToken(token string) bool {
	if len(token) < minTokenLength || len(token) > maxTokenLength {
		return false
	}
	hasLetter := false
	for _, r := range token {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	return hasLetter
}

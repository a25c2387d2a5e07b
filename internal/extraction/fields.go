package extraction

import (
	"regexp"
	"strings"
)

// Each contact field is extracted by an ordered cascade of patterns: the
// first pattern that produces a match wins and later patterns are never
// tried. Absence of a match is "" rather than an error, so every extractor
// is total.

// fieldPattern is one step of a cascade. When group is positive, that capture
// group is returned instead of the whole match.
type fieldPattern struct {
	re    *regexp.Regexp
	group int
}

// extractFirst runs a cascade over text and returns the first hit, trimmed.
func extractFirst(text string, cascade []fieldPattern) string {
	for _, p := range cascade {
		match := p.re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		if p.group > 0 && p.group < len(match) {
			return strings.TrimSpace(match[p.group])
		}
		return strings.TrimSpace(match[0])
	}
	return ""
}

var emailCascade = []fieldPattern{
	{re: regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)},
	{re: regexp.MustCompile(`[^\s@]+@[^\s@]+\.[^\s@]+`)},
}

// ExtractEmail returns the first email address found, verbatim.
func ExtractEmail(text string) string {
	return extractFirst(text, emailCascade)
}

var phoneCascade = []fieldPattern{
	{re: regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`)},
	{re: regexp.MustCompile(`(?:\+1[-.\s]?)?\d{3}[-.]\d{3}[-.]\d{4}`)},
	{re: regexp.MustCompile(`\b\d{10}\b`)},
}

// ExtractPhone returns the first phone number found. The matched string is
// returned as written; no normalization is applied.
func ExtractPhone(text string) string {
	return extractFirst(text, phoneCascade)
}

// City and state must sit on the same line; \s would span the newline.
var locationCascade = []fieldPattern{
	{re: regexp.MustCompile(`(?im)^\s*(?:location|address|based in)[:\s]+(.{2,60})$`), group: 1},
	{re: regexp.MustCompile(`\b([A-Z][a-z]+(?:[ ][A-Z][a-z]+)?,[ ]*[A-Z]{2})\b`), group: 1},
	{re: regexp.MustCompile(`\b([A-Z][a-z]+(?:[ ][A-Z][a-z]+)?,[ ]*[A-Z][a-z]{3,})\b`), group: 1},
}

// ExtractLocation returns the candidate's location, stripped of any label.
func ExtractLocation(text string) string {
	return extractFirst(text, locationCascade)
}

var linkedinCascade = []fieldPattern{
	{re: regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_-]+/?`)},
	{re: regexp.MustCompile(`(?im)^\s*linkedin[:\s]+(\S{3,100})$`), group: 1},
}

// ExtractLinkedIn returns the candidate's LinkedIn profile reference.
func ExtractLinkedIn(text string) string {
	return extractFirst(text, linkedinCascade)
}

var githubCascade = []fieldPattern{
	{re: regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_-]+/?`)},
	{re: regexp.MustCompile(`(?im)^\s*github[:\s]+(\S{3,100})$`), group: 1},
}

// ExtractGitHub returns the candidate's GitHub profile reference.
func ExtractGitHub(text string) string {
	return extractFirst(text, githubCascade)
}

var websiteCascade = []fieldPattern{
	{re: regexp.MustCompile(`(?im)^\s*(?:website|portfolio|site)[:\s]+(\S{4,120})$`), group: 1},
	{re: regexp.MustCompile(`https?://(?:www\.)?[A-Za-z0-9.-]+\.[A-Za-z]{2,}(?:/\S*)?`)},
}

// ExtractWebsite returns a personal website URL, skipping LinkedIn and
// GitHub profile links which have their own extractors.
func ExtractWebsite(text string) string {
	for _, p := range websiteCascade {
		for _, match := range p.re.FindAllStringSubmatch(text, -1) {
			candidate := match[0]
			if p.group > 0 && p.group < len(match) {
				candidate = match[p.group]
			}
			candidate = strings.TrimSpace(candidate)
			lower := strings.ToLower(candidate)
			if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
				continue
			}
			return candidate
		}
	}
	return ""
}

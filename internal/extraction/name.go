package extraction

import (
	"regexp"
	"strings"
)

// Name extraction is the least reliable heuristic in the extractor: the
// first-line strategy misfires when a resume opens with a section header or
// job title, and nothing in the output distinguishes a correct hit from a
// wrong one. The strategies below run in fixed order and the first success
// short-circuits the rest.

var (
	plainNameLineRe   = regexp.MustCompile(`^[A-Za-z\s]{2,50}$`)
	capitalizedWordRe = regexp.MustCompile(`^[A-Z][a-z]{1,18}$`)
)

// nameStrategy is one attempt at recovering the candidate's name.
type nameStrategy func(lines []string) string

var nameStrategies = []nameStrategy{
	nameFromFirstLine,
	nameFromLabel,
	nameFromCapitalizedLine,
}

// ExtractName returns the candidate's full name, or "" when no strategy
// succeeds. Failure is silent; see the package notes on precision.
func ExtractName(text string) string {
	lines := nonBlankLines(text)
	for _, strategy := range nameStrategies {
		if name := strategy(lines); name != "" {
			return name
		}
	}
	return ""
}

// nameFromFirstLine accepts the first non-blank line when it is alphabetic,
// 2-50 chars, and splits into 2-4 words.
func nameFromFirstLine(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	first := lines[0]
	if !plainNameLineRe.MatchString(first) {
		return ""
	}
	words := strings.Fields(first)
	if len(words) < 2 || len(words) > 4 {
		return ""
	}
	return strings.Join(words, " ")
}

// nameFromLabel scans the first 10 lines for a "name:"-style label and takes
// the text after it when it is 2-49 chars.
func nameFromLabel(lines []string) string {
	limit := min(len(lines), 10)
	for _, line := range lines[:limit] {
		lower := strings.ToLower(line)
		for _, label := range nameLabels {
			idx := strings.Index(lower, label)
			if idx < 0 {
				continue
			}
			candidate := strings.TrimSpace(line[idx+len(label):])
			if len(candidate) >= 2 && len(candidate) < 50 {
				return candidate
			}
		}
	}
	return ""
}

// nameFromCapitalizedLine scans the first 5 lines for one made entirely of
// 2-4 capitalized words.
func nameFromCapitalizedLine(lines []string) string {
	limit := min(len(lines), 5)
	for _, line := range lines[:limit] {
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		allCapitalized := true
		for _, word := range words {
			if !capitalizedWordRe.MatchString(word) {
				allCapitalized = false
				break
			}
		}
		if allCapitalized {
			return strings.Join(words, " ")
		}
	}
	return ""
}

// nonBlankLines returns the trimmed, non-empty lines of text in order.
func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

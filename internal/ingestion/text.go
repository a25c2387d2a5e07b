// Package ingestion turns decoded resume documents into normalized raw text.
// Binary decoding (PDF/DOCX to text) happens upstream; this package consumes
// whatever that collaborator produced, however mangled.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	horizontalRunRe = regexp.MustCompile(`[ \t]+`)
	camelBoundaryRe = regexp.MustCompile(`([a-z])([A-Z])`)
)

// NormalizeText cleans raw extracted text into canonical line-oriented form.
// Steps run in fixed order: CRLF to LF, tabs to spaces, collapse of
// horizontal whitespace runs, and a space inserted at lower-to-upper camel
// boundaries to undo words concatenated by broken PDF extraction.
//
// The camel split can misfire on legitimate camelCase tokens (product names,
// identifiers). That is a known imprecision kept for compatibility with the
// rest of the heuristics, which are tuned against the split form.
//
// Never errors; the empty string normalizes to the empty string.
func NormalizeText(raw string) string {
	if raw == "" {
		return ""
	}

	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", " ")
	text = horizontalRunRe.ReplaceAllString(text, " ")
	text = camelBoundaryRe.ReplaceAllString(text, "$1 $2")

	return text
}

// Lines splits normalized text into trimmed lines. Blank lines are kept so
// section parsers can see paragraph boundaries.
func Lines(normalized string) []string {
	lines := strings.Split(normalized, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

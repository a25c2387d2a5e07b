package ingestion

import "strings"

// DecodeFallbackText is the fixed placeholder the upstream document decoder
// emits when it cannot recover any text from an uploaded file. The extractor
// treats it as a valid, near-empty input rather than an error.
const DecodeFallbackText = "Unable to extract text content from this document. Please paste your resume text manually or re-export the file as a text-based PDF."

// MinMeaningfulLength is the raw-text length below which extraction is
// expected to produce a low-confidence result.
const MinMeaningfulLength = 50

// IsDecodeFallback reports whether raw text is the decoder's failure
// placeholder or too short to carry a real resume.
func IsDecodeFallback(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) < MinMeaningfulLength {
		return true
	}
	return strings.Contains(trimmed, "Unable to extract text content")
}

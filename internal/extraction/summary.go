package extraction

import "strings"

const (
	maxSummaryLength = 800
	minSummaryBlock  = 100
	maxSummaryLines  = 10
)

// extractSummary recovers the professional summary. Strategy 1 reads the
// lines after an explicit summary heading; strategy 2, only when that found
// nothing, picks the first paragraph past the header block that is long
// enough and sounds professional.
func extractSummary(lines []string, fullText string) string {
	if summary := summaryAfterHeading(lines); summary != "" {
		return summary
	}
	return summaryFromBlocks(fullText)
}

// summaryAfterHeading accumulates up to 10 non-heading lines following a
// summary heading, stopping at the next section heading.
func summaryAfterHeading(lines []string) string {
	collecting := false
	var collected []string

	for _, line := range lines {
		section := classifyHeading(line)
		if collecting {
			if section != SectionNone {
				break
			}
			if strings.TrimSpace(line) != "" {
				collected = append(collected, strings.TrimSpace(line))
				if len(collected) >= maxSummaryLines {
					break
				}
			}
			continue
		}
		if section == SectionSummary {
			collecting = true
		}
	}

	return truncate(strings.Join(collected, " "), maxSummaryLength)
}

// summaryFromBlocks splits the text on blank lines, skips the first block
// (assumed name/contact header), and accepts the first block of 100-800
// chars that contains a professional-vocabulary term.
func summaryFromBlocks(fullText string) string {
	blocks := strings.Split(fullText, "\n\n")
	for i, block := range blocks {
		if i == 0 {
			continue
		}
		block = strings.TrimSpace(strings.ReplaceAll(block, "\n", " "))
		if len(block) < minSummaryBlock || len(block) > maxSummaryLength {
			continue
		}
		lower := strings.ToLower(block)
		for _, term := range professionalVocabulary {
			if strings.Contains(lower, term) {
				return block
			}
		}
	}
	return ""
}

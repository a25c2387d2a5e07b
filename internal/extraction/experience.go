package extraction

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

// Limits on what one parse keeps.
const (
	maxExperienceRecords = 8
	maxAchievements      = 5
	maxDescriptionLength = 500
)

// dateRangePatterns trigger a new experience record. A line matching any of
// these is always treated as a date range, even when it could also read as a
// title; the classification below is strictly first-match-wins.
var dateRangePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*(?:19|20)\d{2}\s*[-–—]\s*(?:19|20)\d{2}`),
	regexp.MustCompile(`(?i)(?:19|20)\d{2}\s*[-–—]\s*(?:present|current|now)`),
	regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(?:19|20)\d{2}`),
	regexp.MustCompile(`(?i)\b\d{1,2}/(?:19|20)\d{2}\s*[-–—]\s*(?:\d{1,2}/(?:19|20)\d{2}|present)`),
	regexp.MustCompile(`\b(?:19|20)\d{2}\s*[-–—]\s*(?:19|20)\d{2}\b`),
}

func isDateRangeLine(line string) bool {
	for _, re := range dateRangePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

var bulletPrefixes = []string{"•", "-", "*"}

func stripBullet(line string) (string, bool) {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return line, false
}

// looksLikePosition applies rule 2: a job-title line is 6-149 chars, has no
// email or URL, does not start with a digit, and is at most 10 words.
func looksLikePosition(line string) bool {
	if len(line) < 6 || len(line) >= 150 {
		return false
	}
	if strings.Contains(line, "@") || strings.Contains(line, "http") {
		return false
	}
	if line[0] >= '0' && line[0] <= '9' {
		return false
	}
	return len(strings.Fields(line)) <= 10
}

// looksLikeCompany applies rule 3: 3-99 chars, no email/URL, not a bullet.
func looksLikeCompany(line string) bool {
	if len(line) < 3 || len(line) >= 100 {
		return false
	}
	if strings.Contains(line, "@") || strings.Contains(line, "http") {
		return false
	}
	if _, isBullet := stripBullet(line); isBullet {
		return false
	}
	return true
}

// parseExperience folds the experience-section lines into records. The
// record in progress is carried as a pointer and flushed whenever a new date
// range starts a record or the lines run out. Records that never got a
// position are discarded.
func parseExperience(lines []string) []types.ExperienceRecord {
	records := []types.ExperienceRecord{}
	var current *types.ExperienceRecord

	// IDs are positional and regenerated on every parse; they are unique
	// within the result but carry no meaning across re-parses.
	flush := func() {
		if current != nil && strings.TrimSpace(current.Position) != "" {
			current.ID = fmt.Sprintf("exp-%d", len(records)+1)
			records = append(records, *current)
		}
		current = nil
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case isDateRangeLine(line):
			// A date range belongs to the record being built when that
			// record has a position but no dates yet (title-first layouts).
			// Otherwise it starts the next record.
			if current != nil && current.Position != "" && current.Years == "" {
				current.Years = line
				continue
			}
			flush()
			current = newExperienceRecord()
			current.Years = line

		case current == nil || current.Position == "":
			if !looksLikePosition(line) {
				continue
			}
			if current == nil {
				current = newExperienceRecord()
			}
			current.Position = line

		case current.Company == "":
			if looksLikeCompany(line) {
				current.Company = line
			}

		default:
			if text, isBullet := stripBullet(line); isBullet {
				if len(current.Achievements) < maxAchievements {
					current.Achievements = append(current.Achievements, text)
				}
			} else if len(line) > 20 {
				current.Description = appendCapped(current.Description, line, maxDescriptionLength)
			}
		}
	}
	flush()

	if len(records) > maxExperienceRecords {
		records = records[:maxExperienceRecords]
	}
	return records
}

func newExperienceRecord() *types.ExperienceRecord {
	return &types.ExperienceRecord{
		Achievements: []string{},
	}
}

// appendCapped concatenates text onto existing with a space, truncating the
// result at cap runes.
func appendCapped(existing, text string, capLen int) string {
	combined := text
	if existing != "" {
		combined = existing + " " + text
	}
	if len(combined) > capLen {
		combined = combined[:capLen]
	}
	return combined
}

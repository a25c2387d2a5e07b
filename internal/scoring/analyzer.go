// Package scoring computes a bounded, explainable ATS compatibility score
// over a parsed resume. The rule-based analyzer is pure and deterministic:
// identical inputs always give byte-identical output, there is no randomness
// and no time dependence, and no input can make it fail.
package scoring

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

// Dimension weights for the overall score. Each dimension is at most 100, so
// the weighted sum is bounded by 100 without re-clamping.
const (
	weightKeywords   = 0.35
	weightFormatting = 0.25
	weightContent    = 0.20
	weightImpact     = 0.20
)

const (
	maxMissingKeywords = 10
	maxSuggestions     = 5
	contentTargetWords = 500
)

// numericMetricRe detects quantified impact: percentages, money, k/m scale
// suffixes, and time units.
var numericMetricRe = regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*(?:%|k\b|m\b|\$|percent|hours?|days?|weeks?|months?|years?)|\$\s*\d+`)

// Analyze scores a resume against a target role and optional explicit
// keywords. Unknown roles fall back to the default role dictionary; empty or
// junk resumes degrade to low scores with explanatory coaching rather than
// an error.
func Analyze(resume *types.ParsedResume, targetRole string, targetKeywords []string) *types.ATSAnalysis {
	serialized := serializeResume(resume)

	universe := keywordUniverse(targetRole, targetKeywords)
	keywordScore, matched, missing := scoreKeywords(serialized, universe)
	formattingScore := scoreFormatting(resume)
	contentScore := scoreContent(serialized)
	impactScore := scoreImpact(resume, serialized)

	overall := int(math.Round(
		weightKeywords*float64(keywordScore) +
			weightFormatting*float64(formattingScore) +
			weightContent*float64(contentScore) +
			weightImpact*float64(impactScore)))

	breakdown := types.ScoreBreakdown{
		Keywords:   keywordScore,
		Formatting: formattingScore,
		Content:    contentScore,
		Impact:     impactScore,
	}

	analysis := types.NewATSAnalysis()
	analysis.Score = overall
	analysis.Breakdown = breakdown
	analysis.MatchedKeywords = matched
	analysis.MissingKeywords = missing
	analysis.Suggestions, analysis.Risks = buildCoaching(resume, serialized, breakdown, missing)
	analysis.MetricInsights = buildMetricInsights(resume, breakdown, missing)

	return analysis
}

// keywordUniverse merges the role dictionary, the caller's explicit
// keywords, and the always-screened builder keywords, deduplicated
// case-insensitively with order preserved.
func keywordUniverse(targetRole string, targetKeywords []string) []string {
	role := strings.ToLower(strings.TrimSpace(targetRole))
	universe := []string{}
	seen := make(map[string]bool)

	add := func(keyword string) {
		keyword = strings.TrimSpace(keyword)
		key := strings.ToLower(keyword)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		universe = append(universe, key)
	}

	for _, keyword := range RoleKeywords(role) {
		add(keyword)
	}
	for _, keyword := range targetKeywords {
		add(keyword)
	}
	for _, keyword := range builderKeywords {
		add(keyword)
	}

	return universe
}

// scoreKeywords computes 100*matched/universe. Matching is case-insensitive
// substring search over the serialized resume; the missing list is capped at
// the top 10 in universe order.
func scoreKeywords(serialized string, universe []string) (score int, matched, missing []string) {
	matched = []string{}
	missing = []string{}
	if len(universe) == 0 {
		return 0, matched, missing
	}

	for _, keyword := range universe {
		if strings.Contains(serialized, keyword) {
			matched = append(matched, keyword)
		} else if len(missing) < maxMissingKeywords {
			missing = append(missing, keyword)
		}
	}

	score = int(math.Round(100 * float64(len(matched)) / float64(len(universe))))
	return score, matched, missing
}

// Formatting rubric weights. All-or-nothing per rule; no partial credit.
const (
	formatEmailPoints       = 15
	formatPhonePoints       = 15
	formatNamePoints        = 15
	formatSummaryPoints     = 20
	formatCompanyPoints     = 20
	formatInstitutionPoints = 15
	minSummaryChars         = 50
)

// scoreFormatting applies the fixed 100-point structure rubric.
func scoreFormatting(resume *types.ParsedResume) int {
	score := 0
	if resume.Personal.Email != "" {
		score += formatEmailPoints
	}
	if resume.Personal.Phone != "" {
		score += formatPhonePoints
	}
	if resume.Personal.FullName != "" {
		score += formatNamePoints
	}
	if len(resume.Summary) >= minSummaryChars {
		score += formatSummaryPoints
	}
	if len(resume.Experience) > 0 && resume.Experience[0].Company != "" {
		score += formatCompanyPoints
	}
	if len(resume.Education) > 0 && resume.Education[0].Institution != "" {
		score += formatInstitutionPoints
	}
	return score
}

// scoreContent is a deliberate length proxy: full credit at 500 words.
func scoreContent(serialized string) int {
	words := len(strings.Fields(serialized))
	score := 100 * words / contentTargetWords
	if score > 100 {
		score = 100
	}
	return score
}

// Impact scoring weights.
const (
	impactPerVerb      = 5
	impactMetricPoints = 30
	impactBulletPoints = 20
)

// scoreImpact rewards action verbs (presence, not frequency), quantified
// metrics, and bullet formatting, capped at 100.
func scoreImpact(resume *types.ParsedResume, serialized string) int {
	verbs := 0
	for _, verb := range actionVerbs {
		if strings.Contains(serialized, verb) {
			verbs++
		}
	}

	score := impactPerVerb * verbs
	if numericMetricRe.MatchString(serialized) {
		score += impactMetricPoints
	}
	if hasBulletFormatting(resume) {
		score += impactBulletPoints
	}
	if score > 100 {
		score = 100
	}
	return score
}

// hasBulletFormatting scans experience descriptions for literal bullet
// characters. Achievements count too: they were bullet lines before the
// parser stripped the markers.
func hasBulletFormatting(resume *types.ParsedResume) bool {
	for _, exp := range resume.Experience {
		if strings.ContainsAny(exp.Description, "•-") {
			return true
		}
		if len(exp.Achievements) > 0 {
			return true
		}
	}
	return false
}

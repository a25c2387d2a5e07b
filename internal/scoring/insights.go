package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

// Coaching thresholds. The same cutoffs drive suggestions, risks, and the
// per-dimension insights so the narrative never contradicts the numbers.
const (
	lowKeywords    = 40
	okKeywords     = 70
	lowFormatting  = 50
	okFormatting   = 85
	lowContent     = 40
	okContent      = 75
	lowImpact      = 50
	okImpact       = 75
	tinyResumeWord = 50
)

// buildCoaching produces the flat suggestion and risk lists from fixed
// thresholds. Suggestions are capped at 5; risks are not capped.
func buildCoaching(resume *types.ParsedResume, serialized string, b types.ScoreBreakdown, missing []string) (suggestions, risks []string) {
	suggestions = []string{}
	risks = []string{}

	if len(strings.Fields(serialized)) < tinyResumeWord {
		suggestions = append(suggestions,
			"Very little text could be read from this resume. Paste the content manually or re-export the file as a text-based PDF.")
		risks = append(risks, "The document may be image-based or corrupted; most ATS software will see it as empty.")
	}

	if b.Keywords < lowKeywords {
		risks = append(risks, "Low keyword match: this resume may be filtered out before a recruiter ever sees it.")
		if len(missing) > 0 {
			suggestions = append(suggestions, fmt.Sprintf(
				"Work terms like %s into your experience bullets where they honestly apply.", quoteList(missing, 2)))
		}
	} else if b.Keywords < okKeywords && len(missing) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Consider adding %s to close the remaining keyword gap.", quoteList(missing, 2)))
	}

	if b.Formatting < lowFormatting {
		risks = append(risks, "Core sections are missing; ATS parsers rely on name, contact info, experience and education being present.")
		suggestions = append(suggestions, "Add the missing basics: full name, email, phone, and clearly labeled Experience and Education sections.")
	} else if b.Formatting < okFormatting {
		suggestions = append(suggestions, "Complete the remaining profile fields (summary of 50+ characters, company and school names) for full structure credit.")
	}

	if b.Content < lowContent {
		suggestions = append(suggestions, fmt.Sprintf(
			"The resume is thin on content; aim for roughly %d words of substantive description.", contentTargetWords))
	}

	if b.Impact < lowImpact {
		suggestions = append(suggestions, "Lead bullets with action verbs and quantify outcomes (percentages, dollar amounts, time saved).")
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions, risks
}

// buildMetricInsights fills the per-dimension coaching templates. The text
// is driven by the same thresholds as the suggestions plus the first missing
// keywords and records, so examples stay concrete.
func buildMetricInsights(resume *types.ParsedResume, b types.ScoreBreakdown, missing []string) types.MetricInsights {
	return types.MetricInsights{
		Keywords:   keywordInsight(b.Keywords, missing),
		Formatting: formattingInsight(resume, b.Formatting),
		Content:    contentInsight(b.Content),
		Impact:     impactInsight(resume, b.Impact),
	}
}

func keywordInsight(score int, missing []string) types.MetricInsight {
	insight := types.MetricInsight{
		Label:           "Keyword Match",
		WhatsMissing:    []string{},
		Recommendations: []string{},
		Examples:        []string{},
	}

	switch {
	case score >= okKeywords:
		insight.Explanation = "Your resume covers most of the terms an ATS screens for in this role."
	case score >= lowKeywords:
		insight.Explanation = "Your resume matches some expected terms, but notable gaps remain."
	default:
		insight.Explanation = "Your resume matches very few of the terms an ATS screens for in this role."
	}

	for i, keyword := range missing {
		if i >= 2 {
			break
		}
		insight.WhatsMissing = append(insight.WhatsMissing, keyword)
		insight.Examples = append(insight.Examples, fmt.Sprintf(
			"Used %s to cut release turnaround from two weeks to three days.", keyword))
	}
	if len(missing) > 0 {
		insight.Recommendations = append(insight.Recommendations,
			"Mirror the job posting's vocabulary in your bullets, but only for work you actually did.")
	}

	return insight
}

func formattingInsight(resume *types.ParsedResume, score int) types.MetricInsight {
	insight := types.MetricInsight{
		Label:           "Structure & Contact Info",
		WhatsMissing:    []string{},
		Recommendations: []string{},
		Examples:        []string{},
	}

	if score >= okFormatting {
		insight.Explanation = "All of the structural elements ATS parsers look for are present."
	} else {
		insight.Explanation = "Some structural elements ATS parsers expect could not be found."
	}

	if resume.Personal.Email == "" {
		insight.WhatsMissing = append(insight.WhatsMissing, "email address")
	}
	if resume.Personal.Phone == "" {
		insight.WhatsMissing = append(insight.WhatsMissing, "phone number")
	}
	if resume.Personal.FullName == "" {
		insight.WhatsMissing = append(insight.WhatsMissing, "full name")
	}
	if len(resume.Summary) < minSummaryChars {
		insight.WhatsMissing = append(insight.WhatsMissing, "professional summary")
		insight.Examples = append(insight.Examples,
			"Backend engineer with 8 years building payment systems, now focused on platform reliability.")
	}
	if len(resume.Experience) == 0 {
		insight.WhatsMissing = append(insight.WhatsMissing, "work experience section")
	}
	if len(resume.Education) == 0 {
		insight.WhatsMissing = append(insight.WhatsMissing, "education section")
	}

	if len(insight.WhatsMissing) > 0 {
		insight.Recommendations = append(insight.Recommendations,
			"Use conventional section headings (Experience, Education, Skills) so automated parsers find them.")
	}

	return insight
}

func contentInsight(score int) types.MetricInsight {
	insight := types.MetricInsight{
		Label:           "Content Depth",
		WhatsMissing:    []string{},
		Recommendations: []string{},
		Examples:        []string{},
	}

	switch {
	case score >= okContent:
		insight.Explanation = "The resume has enough substance for an ATS to evaluate."
	case score >= lowContent:
		insight.Explanation = "The resume is on the short side; a little more detail would help."
		insight.Recommendations = append(insight.Recommendations,
			"Expand each role to 2-4 bullets describing what you did and what changed because of it.")
	default:
		insight.Explanation = "There is too little text for an ATS to evaluate meaningfully."
		insight.WhatsMissing = append(insight.WhatsMissing, "substantive role descriptions")
		insight.Recommendations = append(insight.Recommendations,
			fmt.Sprintf("Target roughly %d words across your experience and summary.", contentTargetWords))
	}

	return insight
}

func impactInsight(resume *types.ParsedResume, score int) types.MetricInsight {
	insight := types.MetricInsight{
		Label:           "Impact & Achievements",
		WhatsMissing:    []string{},
		Recommendations: []string{},
		Examples:        []string{},
	}

	if score >= okImpact {
		insight.Explanation = "Your writing already leads with action and measurable outcomes."
		return insight
	}

	insight.Explanation = "Bullets read as duties rather than outcomes; ATS-era recruiters scan for measurable impact."
	insight.WhatsMissing = append(insight.WhatsMissing, "quantified results", "strong action verbs")
	insight.Recommendations = append(insight.Recommendations,
		"Start each bullet with a verb like led, built, reduced, or launched, and attach a number to the outcome.")

	// Rewrite the first weak-looking bullet as a concrete example.
	for _, exp := range resume.Experience {
		if exp.Position != "" {
			insight.Examples = append(insight.Examples, fmt.Sprintf(
				"Instead of \"worked as %s\", try \"Led 4 engineers as %s, cutting incident response time by 35%%\".",
				exp.Position, exp.Position))
			break
		}
	}
	if len(insight.Examples) == 0 {
		insight.Examples = append(insight.Examples,
			"Reduced deployment failures by 40% by introducing automated canary releases.")
	}

	return insight
}

// quoteList renders up to n items as a quoted, comma-separated list.
func quoteList(items []string, n int) string {
	if len(items) < n {
		n = len(items)
	}
	quoted := make([]string, 0, n)
	for _, item := range items[:n] {
		quoted = append(quoted, fmt.Sprintf("%q", item))
	}
	return strings.Join(quoted, ", ")
}

// Package extraction recovers a structured professional profile from raw,
// format-stripped resume text using ordered heuristics. There is no schema
// and no reliable grammar in the input; every extractor degrades to empty
// output instead of failing, so Extract is total over all strings.
package extraction

import (
	"github.com/jonathan/resume-insight/internal/ingestion"
	"github.com/jonathan/resume-insight/internal/types"
)

// Extract parses raw resume text into a fully shaped ParsedResume and an
// extraction-completeness estimate. It never fails: empty, tiny, or
// placeholder input yields an empty resume with zero confidence.
//
// Record IDs are generated per call and carry no meaning across re-parses.
func Extract(rawText string) (*types.ParsedResume, *types.ExtractionConfidence) {
	resume := types.NewParsedResume()

	normalized := ingestion.NormalizeText(rawText)
	if ingestion.IsDecodeFallback(normalized) {
		// Still attempt contact extraction; a short paste may carry an email.
		resume.Personal = extractPersonal(normalized)
		return resume, scoreConfidence(resume)
	}

	lines := ingestion.Lines(normalized)
	sections := scanSections(lines)

	resume.Personal = extractPersonal(normalized)
	resume.Summary = extractSummary(lines, normalized)
	resume.Experience = parseExperience(sections[SectionExperience])
	resume.Education = parseEducation(sections[SectionEducation])
	resume.Skills = extractSkills(sections[SectionSkills], normalized)
	resume.Certifications = extractCertifications(sections[SectionCertifications])
	resume.Languages = extractLanguages(normalized)

	return resume, scoreConfidence(resume)
}

// extractPersonal runs the independent contact-field cascades.
func extractPersonal(text string) types.PersonalInfo {
	return types.PersonalInfo{
		FullName: ExtractName(text),
		Email:    ExtractEmail(text),
		Phone:    ExtractPhone(text),
		Location: ExtractLocation(text),
		LinkedIn: ExtractLinkedIn(text),
		GitHub:   ExtractGitHub(text),
		Website:  ExtractWebsite(text),
	}
}

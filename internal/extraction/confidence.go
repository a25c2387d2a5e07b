package extraction

import (
	"math"

	"github.com/jonathan/resume-insight/internal/types"
)

// Confidence weights. These are design constants, not derived values; they
// sum to 1 so the overall score stays in [0,1].
const (
	weightPersonal   = 0.30
	weightSummary    = 0.15
	weightExperience = 0.25
	weightEducation  = 0.15
	weightSkills     = 0.15
)

// scoreConfidence estimates extraction completeness from the structured
// output alone; it never looks at the raw text. Each sub-score is a capped
// linear count, rounded to 2 decimals.
func scoreConfidence(resume *types.ParsedResume) *types.ExtractionConfidence {
	personal := personalScore(&resume.Personal)
	summary := math.Min(float64(len(resume.Summary))/200.0, 1)
	experience := math.Min(float64(validExperienceCount(resume.Experience))/3.0, 1)
	education := math.Min(float64(len(resume.Education))/2.0, 1)
	skills := math.Min(float64(len(resume.Skills))/8.0, 1)

	overall := weightPersonal*personal +
		weightSummary*summary +
		weightExperience*experience +
		weightEducation*education +
		weightSkills*skills

	return &types.ExtractionConfidence{
		Overall:    round2(overall),
		Personal:   round2(personal),
		Summary:    round2(summary),
		Experience: round2(experience),
		Education:  round2(education),
		Skills:     round2(skills),
	}
}

// personalScore counts filled contact fields, capped at 5 of 7 so a resume
// without a personal site or GitHub can still reach full confidence.
func personalScore(p *types.PersonalInfo) float64 {
	filled := 0
	for _, field := range []string{p.FullName, p.Email, p.Phone, p.Location, p.LinkedIn, p.GitHub, p.Website} {
		if field != "" {
			filled++
		}
	}
	return math.Min(float64(filled)/5.0, 1)
}

// validExperienceCount counts records whose position is longer than 2 chars.
func validExperienceCount(records []types.ExperienceRecord) int {
	count := 0
	for _, record := range records {
		if len(record.Position) > 2 {
			count++
		}
	}
	return count
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Package types provides type definitions for structured data used throughout the resume-insight system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PersonalInfo holds the contact fields recovered from a resume.
// Every field defaults to "" when extraction finds nothing.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

// ExperienceRecord represents one work-history entry in document order.
type ExperienceRecord struct {
	ID           string   `json:"id"`
	Position     string   `json:"position"`
	Company      string   `json:"company"`
	Years        string   `json:"years"` // raw date-range string, preserved as written
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// EducationRecord represents one education entry in document order.
type EducationRecord struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPA         string `json:"gpa"`
}

// ParsedResume is the structured profile recovered from raw resume text.
// It is always fully shaped: no field is ever nil, so downstream consumers
// never need to null-check.
type ParsedResume struct {
	Personal       PersonalInfo       `json:"personal"`
	Summary        string             `json:"summary"`
	Experience     []ExperienceRecord `json:"experience"`
	Education      []EducationRecord  `json:"education"`
	Skills         []string           `json:"skills"`
	Certifications []string           `json:"certifications"`
	Languages      []string           `json:"languages"`
}

// NewParsedResume returns an empty but fully shaped resume.
// All collections are allocated so they serialize as [] rather than null.
func NewParsedResume() *ParsedResume {
	return &ParsedResume{
		Experience:     []ExperienceRecord{},
		Education:      []EducationRecord{},
		Skills:         []string{},
		Certifications: []string{},
		Languages:      []string{},
	}
}

// ExtractionConfidence estimates how complete the extracted structure is,
// per field group and overall. Every value is in [0,1], rounded to 2 decimals.
// This measures extraction completeness, not content quality.
type ExtractionConfidence struct {
	Overall    float64 `json:"overall"`
	Personal   float64 `json:"personal"`
	Summary    float64 `json:"summary"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Skills     float64 `json:"skills"`
}

package extraction

import "strings"

// Dictionary data for the heuristic extractors. These are deliberately plain
// package-level slices/maps so tests (and config overrides) can swap them
// without touching the parsing logic.

// sectionKeywords maps each section to the heading phrases that open it.
// Matching is case-insensitive substring over lines shorter than 100 chars.
var sectionKeywords = map[Section][]string{
	SectionSummary: {
		"summary", "professional summary", "profile", "objective", "about me",
	},
	SectionExperience: {
		"experience", "work history", "employment", "professional experience",
		"work experience", "career history",
	},
	SectionEducation: {
		"education", "academic", "qualifications", "degrees",
	},
	SectionSkills: {
		"skills", "technical skills", "core competencies", "technologies",
		"expertise", "proficiencies",
	},
	SectionCertifications: {
		"certifications", "certificates", "licenses", "credentials",
	},
	SectionLanguages: {
		"languages", "language proficiency",
	},
}

// commonSkills is the dictionary scanned against the whole text,
// independent of section detection.
var commonSkills = []string{
	"javascript", "typescript", "python", "java", "golang", "rust",
	"c++", "c#", "ruby", "php", "swift", "kotlin", "scala", "sql",
	"react", "angular", "vue", "node.js", "next.js", "django", "flask",
	"spring", "rails", "express", "graphql", "rest api",
	"html", "css", "sass", "tailwind",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins",
	"git", "ci/cd", "linux", "bash",
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "kafka",
	"machine learning", "data analysis", "pandas", "tensorflow", "pytorch",
	"agile", "scrum", "jira", "figma", "excel", "tableau", "power bi",
	"project management", "salesforce",
}

// knownLanguages is the dictionary for spoken-language detection.
var knownLanguages = []string{
	"english", "spanish", "french", "german", "italian", "portuguese",
	"mandarin", "chinese", "cantonese", "japanese", "korean", "hindi",
	"arabic", "russian", "dutch", "polish", "turkish", "vietnamese",
	"swedish", "norwegian", "hebrew", "greek", "thai", "tagalog",
}

// professionalVocabulary marks a paragraph as plausibly being a summary when
// no summary heading exists.
var professionalVocabulary = []string{
	"experienced", "professional", "skilled", "passionate", "motivated",
	"results-driven", "detail-oriented", "years of experience", "expertise",
	"background in", "specializing", "proven", "dedicated", "engineer",
	"developer", "manager", "analyst", "designer", "consultant", "leader",
}

// institutionKeywords identify a line as an education institution.
var institutionKeywords = []string{
	"university", "college", "institute", "school", "academy", "polytechnic",
}

// nameLabels are scanned in the first lines for label-prefixed names.
var nameLabels = []string{"name:", "full name:", "candidate:", "applicant:"}

// KnownSkills returns every dictionary skill found in text, in dictionary
// order. Callers that mine keywords from non-resume text (job postings)
// use this instead of the section-aware extractors.
func KnownSkills(text string) []string {
	lower := strings.ToLower(text)
	found := []string{}
	for _, skill := range commonSkills {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

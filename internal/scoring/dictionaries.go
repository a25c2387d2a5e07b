package scoring

import (
	"encoding/json"
	"fmt"
	"os"
)

// Dictionary constants for the rule-based analyzer. Kept as plain data so
// alternate dictionaries can be swapped in for tests or config overrides
// without touching the scoring logic.

// defaultRole is used when a target role is not in the dictionary. This is a
// documented default, not an error: scoring against some universe beats
// refusing to score.
const defaultRole = "software engineer"

// roleKeywords maps a target role to the keyword universe an ATS would
// screen for.
var roleKeywords = map[string][]string{
	"software engineer": {
		"software development", "programming", "debugging", "code review",
		"testing", "agile", "git", "api", "algorithms", "data structures",
		"ci/cd", "cloud",
	},
	"frontend developer": {
		"javascript", "typescript", "react", "css", "html", "responsive design",
		"accessibility", "webpack", "testing", "ui", "ux",
	},
	"backend developer": {
		"api", "database", "sql", "microservices", "rest", "caching",
		"message queue", "scalability", "testing", "docker",
	},
	"devops engineer": {
		"kubernetes", "docker", "terraform", "ci/cd", "aws", "monitoring",
		"automation", "linux", "infrastructure", "incident response",
	},
	"data scientist": {
		"python", "machine learning", "statistics", "sql", "pandas",
		"visualization", "modeling", "experimentation", "deep learning",
	},
	"data analyst": {
		"sql", "excel", "tableau", "data analysis", "reporting", "dashboards",
		"visualization", "statistics", "python",
	},
	"product manager": {
		"roadmap", "stakeholder", "prioritization", "user research", "metrics",
		"agile", "go-to-market", "requirements", "strategy",
	},
	"project manager": {
		"project management", "scheduling", "budget", "risk management",
		"stakeholder", "agile", "scrum", "delivery", "communication",
	},
	"marketing manager": {
		"campaigns", "seo", "content marketing", "analytics", "branding",
		"social media", "email marketing", "conversion", "strategy",
	},
	"designer": {
		"figma", "prototyping", "user research", "wireframes", "typography",
		"design systems", "accessibility", "ui", "ux",
	},
}

// builderKeywords are screened for every resume regardless of role: the
// generic competencies recruiter filters consistently look for.
var builderKeywords = []string{
	"leadership", "communication", "collaboration", "problem solving",
	"project management", "teamwork", "mentoring", "cross-functional",
}

// actionVerbs signal impact-oriented writing. Presence is checked by
// substring, not counted by frequency.
var actionVerbs = []string{
	"achieved", "improved", "launched", "led", "managed", "built",
	"created", "designed", "developed", "implemented", "delivered",
	"increased", "reduced", "optimized", "automated", "streamlined",
	"spearheaded", "drove", "established", "initiated", "transformed",
	"scaled", "migrated", "mentored", "negotiated", "shipped",
	"architected", "accelerated", "generated", "cut",
}

// RoleKeywords returns the keyword list for a role, falling back to the
// default role when unrecognized. Exposed for the coaching templates.
func RoleKeywords(role string) []string {
	if keywords, ok := roleKeywords[role]; ok {
		return keywords
	}
	return roleKeywords[defaultRole]
}

// DictionaryOverrides replaces built-in dictionaries with customer-supplied
// ones. Roles present in RoleKeywords replace that role's list; absent roles
// keep the built-in list. A non-empty ActionVerbs replaces the verb list
// wholesale.
type DictionaryOverrides struct {
	RoleKeywords map[string][]string `json:"role_keywords,omitempty"`
	ActionVerbs  []string            `json:"action_verbs,omitempty"`
}

// LoadDictionaryOverrides reads dictionary overrides from a JSON file.
func LoadDictionaryOverrides(path string) (*DictionaryOverrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file %s: %w", path, err)
	}

	var overrides DictionaryOverrides
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary file %s: %w", path, err)
	}
	return &overrides, nil
}

// ApplyDictionaryOverrides installs overrides globally. Call once at startup
// before any scoring; the analyzer itself never mutates dictionaries.
func ApplyDictionaryOverrides(overrides *DictionaryOverrides) {
	if overrides == nil {
		return
	}
	for role, keywords := range overrides.RoleKeywords {
		roleKeywords[role] = keywords
	}
	if len(overrides.ActionVerbs) > 0 {
		actionVerbs = overrides.ActionVerbs
	}
}

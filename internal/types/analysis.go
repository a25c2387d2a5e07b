package types

// ScoreBreakdown holds the four ATS scoring dimensions, each 0-100.
type ScoreBreakdown struct {
	Keywords   int `json:"keywords"`
	Formatting int `json:"formatting"`
	Content    int `json:"content"`
	Impact     int `json:"impact"`
}

// MetricInsight is template-filled coaching text for one scoring dimension.
// It explains the score in plain language; none of its fields feed back into
// the numeric result.
type MetricInsight struct {
	Label           string   `json:"label"`
	Explanation     string   `json:"explanation"`
	WhatsMissing    []string `json:"whatsMissing"`
	Recommendations []string `json:"recommendations"`
	Examples        []string `json:"examples"`
}

// MetricInsights groups one insight per scoring dimension.
type MetricInsights struct {
	Keywords   MetricInsight `json:"keywords"`
	Formatting MetricInsight `json:"formatting"`
	Content    MetricInsight `json:"content"`
	Impact     MetricInsight `json:"impact"`
}

// ATSAnalysis is the result of scoring a parsed resume against a target role
// or keyword list. Score and every breakdown dimension are bounded 0-100.
type ATSAnalysis struct {
	Score           int            `json:"score"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
	MatchedKeywords []string       `json:"matchedKeywords"`
	MissingKeywords []string       `json:"missingKeywords"` // top 10
	Suggestions     []string       `json:"suggestions"`     // max 5
	Risks           []string       `json:"risks"`
	MetricInsights  MetricInsights `json:"metricInsights"`
}

// NewATSAnalysis returns an empty but fully shaped analysis.
func NewATSAnalysis() *ATSAnalysis {
	return &ATSAnalysis{
		MatchedKeywords: []string{},
		MissingKeywords: []string{},
		Suggestions:     []string{},
		Risks:           []string{},
	}
}

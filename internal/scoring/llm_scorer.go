package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-insight/internal/llm"
	"github.com/jonathan/resume-insight/internal/prompts"
	validate "github.com/jonathan/resume-insight/internal/schemas"
	"github.com/jonathan/resume-insight/internal/types"
	"github.com/jonathan/resume-insight/schemas"
)

// AIScorer scores resumes with an LLM. The model's JSON output is validated
// against the analysis schema and normalized before it is returned, so a
// successful result obeys the same bounds and caps as the rule-based
// analyzer. Any model, transport, or validation failure is surfaced as an
// error for the Selector to handle.
type AIScorer struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewAIScorer wraps an LLM client in the Scorer interface.
func NewAIScorer(client llm.Client) *AIScorer {
	return &AIScorer{
		client: client,
		tier:   llm.TierStandard,
	}
}

// Name identifies the AI strategy.
func (s *AIScorer) Name() string { return "ai" }

// Score prompts the model for an ATS analysis of the resume.
func (s *AIScorer) Score(ctx context.Context, resume *types.ParsedResume, targetRole string, targetKeywords []string) (*types.ATSAnalysis, error) {
	if s.client == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}

	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize resume: %w", err)
	}

	template, err := prompts.Get("scoring.json", "ats_analysis")
	if err != nil {
		return nil, err
	}

	role := strings.TrimSpace(targetRole)
	if role == "" {
		role = defaultRole
	}
	prompt := prompts.Format(template, map[string]string{
		"Role":     role,
		"Keywords": strings.Join(targetKeywords, ", "),
		"Resume":   string(resumeJSON),
	})

	raw, err := s.client.GenerateJSON(ctx, prompt, s.tier)
	if err != nil {
		return nil, fmt.Errorf("LLM scoring failed: %w", err)
	}
	raw = llm.CleanJSONBlock(raw)

	if err := validate.ValidateJSONString(schemas.ATSAnalysis, raw); err != nil {
		return nil, fmt.Errorf("LLM response failed schema validation: %w", err)
	}

	var analysis types.ATSAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	normalizeAnalysis(&analysis, resume)
	return &analysis, nil
}

// normalizeAnalysis brings a model-produced analysis in line with the
// rule-based output shape: nil slices become empty, caps are enforced, and
// empty insight templates are filled from the breakdown.
func normalizeAnalysis(analysis *types.ATSAnalysis, resume *types.ParsedResume) {
	if analysis.MatchedKeywords == nil {
		analysis.MatchedKeywords = []string{}
	}
	if analysis.MissingKeywords == nil {
		analysis.MissingKeywords = []string{}
	}
	if analysis.Suggestions == nil {
		analysis.Suggestions = []string{}
	}
	if analysis.Risks == nil {
		analysis.Risks = []string{}
	}
	if len(analysis.MissingKeywords) > maxMissingKeywords {
		analysis.MissingKeywords = analysis.MissingKeywords[:maxMissingKeywords]
	}
	if len(analysis.Suggestions) > maxSuggestions {
		analysis.Suggestions = analysis.Suggestions[:maxSuggestions]
	}

	if analysis.MetricInsights.Keywords.Label == "" {
		analysis.MetricInsights = buildMetricInsights(resume, analysis.Breakdown, analysis.MissingKeywords)
	}
}

package scoring

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-insight/internal/types"
)

// Scorer produces an ATS analysis for a parsed resume. Implementations may
// fail; callers that need a guaranteed result go through the Selector.
type Scorer interface {
	// Name identifies the strategy in logs and responses.
	Name() string
	// Score analyzes the resume against a target role and explicit keywords.
	Score(ctx context.Context, resume *types.ParsedResume, targetRole string, targetKeywords []string) (*types.ATSAnalysis, error)
}

// RuleBased wraps the deterministic analyzer in the Scorer interface.
// It never returns an error.
type RuleBased struct{}

// Name identifies the rule-based strategy.
func (RuleBased) Name() string { return "rule-based" }

// Score runs the deterministic analyzer.
func (RuleBased) Score(_ context.Context, resume *types.ParsedResume, targetRole string, targetKeywords []string) (*types.ATSAnalysis, error) {
	return Analyze(resume, targetRole, targetKeywords), nil
}

// Selector picks a scoring strategy per request. When a primary scorer is
// configured and requested it gets exactly one attempt; any failure falls
// back to the rule-based analyzer without a retry, so Score always succeeds.
type Selector struct {
	primary  Scorer
	fallback Scorer
}

// NewSelector builds a selector around an optional primary scorer. Passing
// nil means every request is scored by the rule-based analyzer.
func NewSelector(primary Scorer) *Selector {
	return &Selector{
		primary:  primary,
		fallback: RuleBased{},
	}
}

// Score analyzes the resume, honoring the caller's preference for the
// primary strategy. It returns the analysis and the name of the strategy
// that actually produced it.
func (s *Selector) Score(ctx context.Context, resume *types.ParsedResume, targetRole string, targetKeywords []string, usePrimary bool) (*types.ATSAnalysis, string) {
	if usePrimary && s.primary != nil {
		analysis, err := s.primary.Score(ctx, resume, targetRole, targetKeywords)
		if err == nil {
			return analysis, s.primary.Name()
		}
		log.Warn().
			Err(err).
			Str("strategy", s.primary.Name()).
			Msg("primary scorer failed, falling back to rule-based analysis")
	}

	analysis, _ := s.fallback.Score(ctx, resume, targetRole, targetKeywords)
	return analysis, s.fallback.Name()
}

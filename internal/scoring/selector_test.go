package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insight/internal/types"
)

type stubScorer struct {
	analysis *types.ATSAnalysis
	err      error
	calls    int
}

func (s *stubScorer) Name() string { return "stub" }

func (s *stubScorer) Score(context.Context, *types.ParsedResume, string, []string) (*types.ATSAnalysis, error) {
	s.calls++
	return s.analysis, s.err
}

func TestSelectorUsesPrimaryWhenRequested(t *testing.T) {
	want := types.NewATSAnalysis()
	want.Score = 42
	primary := &stubScorer{analysis: want}
	selector := NewSelector(primary)

	analysis, strategy := selector.Score(context.Background(), strongResume(), "software engineer", nil, true)

	require.NotNil(t, analysis)
	assert.Equal(t, 42, analysis.Score)
	assert.Equal(t, "stub", strategy)
	assert.Equal(t, 1, primary.calls)
}

func TestSelectorFallsBackOnPrimaryError(t *testing.T) {
	primary := &stubScorer{err: errors.New("model unavailable")}
	selector := NewSelector(primary)

	analysis, strategy := selector.Score(context.Background(), strongResume(), "software engineer", nil, true)

	require.NotNil(t, analysis)
	assert.Equal(t, "rule-based", strategy)
	assert.Equal(t, 1, primary.calls, "a failed primary gets exactly one attempt")

	expected := Analyze(strongResume(), "software engineer", nil)
	assert.Equal(t, expected.Score, analysis.Score)
}

func TestSelectorSkipsPrimaryWhenNotRequested(t *testing.T) {
	primary := &stubScorer{analysis: types.NewATSAnalysis()}
	selector := NewSelector(primary)

	_, strategy := selector.Score(context.Background(), strongResume(), "", nil, false)

	assert.Equal(t, "rule-based", strategy)
	assert.Zero(t, primary.calls)
}

func TestSelectorWithoutPrimary(t *testing.T) {
	selector := NewSelector(nil)

	analysis, strategy := selector.Score(context.Background(), strongResume(), "", nil, true)

	require.NotNil(t, analysis)
	assert.Equal(t, "rule-based", strategy)
}

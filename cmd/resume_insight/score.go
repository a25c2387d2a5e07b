package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/extraction"
	"github.com/jonathan/resume-insight/internal/ingestion"
	"github.com/jonathan/resume-insight/internal/jobpost"
	"github.com/jonathan/resume-insight/internal/llm"
	"github.com/jonathan/resume-insight/internal/observability"
	"github.com/jonathan/resume-insight/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score <resume-file>",
	Short: "Score a resume for ATS compatibility",
	Long: `Parse a resume text file and score it against a target role, an explicit
keyword list, or the keywords mined from a job posting URL. With --ai and a
GEMINI_API_KEY, scoring goes through the LLM with rule-based fallback.`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

var (
	scoreRole         string
	scoreKeywords     []string
	scoreJobURL       string
	scoreUseAI        bool
	scoreBrowser      bool
	scoreJSON         bool
	scoreDictionaries string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreRole, "role", "r", "", "Target role (selects the keyword dictionary)")
	scoreCmd.Flags().StringSliceVarP(&scoreKeywords, "keywords", "k", nil, "Explicit target keywords (comma-separated)")
	scoreCmd.Flags().StringVarP(&scoreJobURL, "job-url", "u", "", "Job posting URL to mine keywords from")
	scoreCmd.Flags().BoolVar(&scoreUseAI, "ai", false, "Prefer LLM scoring (requires GEMINI_API_KEY)")
	scoreCmd.Flags().BoolVar(&scoreBrowser, "browser", false, "Allow headless browser fallback for SPA job boards")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the full analysis as JSON instead of a summary")
	scoreCmd.Flags().StringVar(&scoreDictionaries, "dictionaries", "", "JSON file overriding the scoring dictionaries")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if scoreDictionaries != "" {
		overrides, err := scoring.LoadDictionaryOverrides(scoreDictionaries)
		if err != nil {
			return err
		}
		scoring.ApplyDictionaryOverrides(overrides)
	}

	text, _, err := ingestion.ReadFile(args[0])
	if err != nil {
		return err
	}
	resume, _ := extraction.Extract(text)

	selector, client, cleanup, err := buildSelector(ctx, scoreUseAI)
	if err != nil {
		return err
	}
	defer cleanup()

	role := scoreRole
	keywords := scoreKeywords

	if scoreJobURL != "" {
		opts := jobpost.DefaultOptions()
		opts.AllowBrowser = scoreBrowser
		opts.Timeout = 30 * time.Second
		opts.LLM = client

		posting, err := jobpost.FromURL(ctx, scoreJobURL, opts)
		if err != nil {
			log.Warn().Err(err).Str("url", scoreJobURL).Msg("job posting fetch failed, scoring without it")
		} else {
			keywords = append(keywords, posting.Keywords...)
			if role == "" {
				role = posting.Role
			}
		}
	}

	analysis, strategy := selector.Score(ctx, resume, role, keywords, scoreUseAI)

	if scoreJSON {
		data, err := json.MarshalIndent(map[string]any{
			"strategy": strategy,
			"analysis": analysis,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize analysis: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnalysis(analysis, strategy)
	return nil
}

// buildSelector wires the scoring strategy chain. Without --ai or an API key
// the selector only holds the rule-based analyzer and the returned client is
// nil. The client is also handed back so posting keyword mining can share it.
func buildSelector(ctx context.Context, useAI bool) (*scoring.Selector, llm.Client, func(), error) {
	noop := func() {}

	if !useAI {
		return scoring.NewSelector(nil), nil, noop, nil
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, nil, nil, fmt.Errorf("--ai requires the GEMINI_API_KEY environment variable")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	selector := scoring.NewSelector(scoring.NewAIScorer(client))
	return selector, client, func() { _ = client.Close() }, nil
}

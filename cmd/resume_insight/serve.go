package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/config"
	"github.com/jonathan/resume-insight/internal/llm"
	"github.com/jonathan/resume-insight/internal/scoring"
	"github.com/jonathan/resume-insight/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the resume insight HTTP server",
	Long: `Start an HTTP server exposing resume extraction, ATS scoring, and job
posting keyword mining endpoints. LLM scoring is enabled when GEMINI_API_KEY
is set; without it every scoring request uses the rule-based analyzer.`,
	RunE: runServe,
}

var (
	servePort       int
	serveConfigPath string
	serveBrowser    bool
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP listen port (default 8080)")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to a JSON config file")
	serveCmd.Flags().BoolVar(&serveBrowser, "browser", false, "Allow headless browser fallback for SPA job boards")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags win over file values.
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveBrowser {
		cfg.UseBrowser = true
	}
	cfg = cfg.WithFallbacks()

	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if cfg.DictionaryPath != "" {
		overrides, err := scoring.LoadDictionaryOverrides(cfg.DictionaryPath)
		if err != nil {
			return err
		}
		scoring.ApplyDictionaryOverrides(overrides)
		log.Info().Str("path", cfg.DictionaryPath).Msg("scoring dictionaries overridden")
	}

	var (
		primary scoring.Scorer
		client  llm.Client
	)
	if cfg.APIKey != "" {
		c, err := llm.NewClient(context.Background(), llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = c.Close() }()
		client = c
		primary = scoring.NewAIScorer(c)
		log.Info().Msg("LLM scoring and keyword mining enabled")
	} else {
		log.Info().Msg("no GEMINI_API_KEY set, scoring is rule-based only")
	}

	srv := server.New(cfg, scoring.NewSelector(primary), client)
	return srv.Start()
}

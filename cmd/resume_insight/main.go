// Package main provides the entry point for the resume insight CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "resume_insight",
	Short: "Resume parsing and ATS scoring",
	Long:  "Resume Insight extracts structured data from raw resume text and scores it for applicant tracking system compatibility, via CLI or REST API.",
}

var logLevel string

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cobra.OnInitialize(func() {
		logger.Init(logger.Config{Level: logLevel, Format: "pretty"})
	})
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-insight/internal/extraction"
	"github.com/jonathan/resume-insight/internal/ingestion"
	"github.com/jonathan/resume-insight/internal/observability"
	"github.com/jonathan/resume-insight/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract structured data from resume text files",
	Long:  "Parse one or more resume text files into structured JSON with personal info, experience, education, skills, and an extraction confidence score.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExtract,
}

var (
	extractOutDir  string
	extractVerbose bool
	extractWorkers int
)

func init() {
	extractCmd.Flags().StringVarP(&extractOutDir, "out", "o", "", "Output directory for JSON artifacts (default: stdout)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a formatted summary of each parsed resume")
	extractCmd.Flags().IntVar(&extractWorkers, "workers", 4, "Number of files to parse concurrently")

	rootCmd.AddCommand(extractCmd)
}

// extractArtifact is the JSON document written per input file.
type extractArtifact struct {
	Source     string                      `json:"source"`
	Resume     *types.ParsedResume         `json:"resume"`
	Confidence *types.ExtractionConfidence `json:"confidence"`
	Metadata   *ingestion.Metadata         `json:"metadata"`
}

func runExtract(_ *cobra.Command, args []string) error {
	if extractOutDir != "" {
		if err := os.MkdirAll(extractOutDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	artifacts := make([]*extractArtifact, len(args))

	var g errgroup.Group
	g.SetLimit(max(extractWorkers, 1))
	for i, path := range args {
		g.Go(func() error {
			text, metadata, err := ingestion.ReadFile(path)
			if err != nil {
				return err
			}

			resume, confidence := extraction.Extract(text)
			artifacts[i] = &extractArtifact{
				Source:     path,
				Resume:     resume,
				Confidence: confidence,
				Metadata:   metadata,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	for _, artifact := range artifacts {
		if extractVerbose {
			printer.PrintParsedResume(artifact.Resume)
			printer.PrintConfidence(*artifact.Confidence)
		}

		data, err := json.MarshalIndent(artifact, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize result for %s: %w", artifact.Source, err)
		}

		if extractOutDir == "" {
			fmt.Println(string(data))
			continue
		}

		outPath := filepath.Join(extractOutDir, artifactName(artifact.Source))
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		fmt.Printf("Wrote %s\n", outPath)
	}

	return nil
}

// artifactName derives the output filename from the input path.
func artifactName(source string) string {
	base := filepath.Base(source)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".parsed.json"
}

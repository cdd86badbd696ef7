package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/ats-optimizer/internal/ingestion"
	"github.com/jonathan/ats-optimizer/internal/jdintel"
	"github.com/jonathan/ats-optimizer/internal/observability"
	"github.com/jonathan/ats-optimizer/internal/scoring"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long:  `Compute the ATS compatibility score of a resume file (PDF, DOCX or TXT) against a job description text file and print the breakdown as JSON.`,
	RunE:  runScore,
}

var (
	scoreResume  string
	scoreJD      string
	scoreVerbose bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume file (PDF, DOCX or TXT)")
	scoreCmd.Flags().StringVarP(&scoreJD, "jd", "j", "", "Path to job description text file")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print the score breakdown box")

	_ = scoreCmd.MarkFlagRequired("resume")
	_ = scoreCmd.MarkFlagRequired("jd")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	sections, err := loadResume(scoreResume)
	if err != nil {
		return err
	}

	jdText, err := os.ReadFile(scoreJD)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}
	intelligence := jdintel.Extract(ingestion.CleanJD(string(jdText)))

	report := scoring.Score(sections, intelligence)

	if scoreVerbose {
		observability.NewPrinter(os.Stderr).PrintScoreReport(&report)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

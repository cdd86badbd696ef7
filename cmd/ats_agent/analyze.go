package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/ats-optimizer/internal/gap"
	"github.com/jonathan/ats-optimizer/internal/ingestion"
	"github.com/jonathan/ats-optimizer/internal/jdintel"
	"github.com/jonathan/ats-optimizer/internal/llm"
	"github.com/jonathan/ats-optimizer/internal/observability"
	"github.com/jonathan/ats-optimizer/internal/pipeline"
	"github.com/jonathan/ats-optimizer/internal/rewriting"
	"github.com/jonathan/ats-optimizer/internal/scoring"
	"github.com/jonathan/ats-optimizer/internal/sectioning"
	"github.com/jonathan/ats-optimizer/internal/types"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long: `Analyze a resume file (PDF, DOCX or TXT) against a job description text file.

Reports the detected sections, skill gaps and ATS score. With --optimize the
resume is also rewritten and rescored; an API key enables LLM rewriting,
otherwise deterministic rules are used.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeResume     string
	analyzeJD         string
	analyzeAPIKey     string
	analyzeOptimize   bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (PDF, DOCX or TXT)")
	analyzeCmd.Flags().StringVarP(&analyzeJD, "jd", "j", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCmd.Flags().BoolVar(&analyzeOptimize, "optimize", false, "Rewrite the resume and rescore it")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed analysis output")

	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("jd")

	rootCmd.AddCommand(analyzeCmd)
}

// analysisOutput is the JSON document written to stdout.
type analysisOutput struct {
	Sections     types.SectionMap      `json:"sections"`
	Intelligence types.JDIntelligence  `json:"jd_intelligence"`
	Gaps         types.GapReport       `json:"gaps"`
	Score        types.ScoreReport     `json:"score"`
	Optimized    *types.OptimizeResult `json:"optimized,omitempty"`
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(analyzeConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	sections, err := loadResume(analyzeResume)
	if err != nil {
		return err
	}

	jdText, err := os.ReadFile(analyzeJD)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}
	intelligence := jdintel.Extract(ingestion.CleanJD(string(jdText)))

	gaps := gap.Analyze(sections, intelligence)
	score := scoring.Score(sections, intelligence)

	printer := observability.NewPrinter(os.Stderr)
	if cfg.Verbose {
		printer.PrintJDIntelligence(&intelligence)
		printer.PrintGapReport(&gaps)
		printer.PrintScoreReport(&score)
	}

	output := analysisOutput{
		Sections:     sections,
		Intelligence: intelligence,
		Gaps:         gaps,
		Score:        score,
	}

	if analyzeOptimize {
		var client llm.Client
		if cfg.APIKey != "" {
			client, err = llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
			if err != nil {
				return fmt.Errorf("failed to create LLM client: %w", err)
			}
			defer client.Close()
		}

		result, optErr := pipeline.New(rewriting.New(client)).Optimize(ctx, sections, intelligence, nil)
		if optErr != nil {
			return fmt.Errorf("optimization failed: %w", optErr)
		}
		output.Optimized = result

		if cfg.Verbose {
			rescored := scoring.Score(result.OptimizedResume, intelligence)
			printer.PrintScoreReport(&rescored)
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// loadResume reads a resume file, extracts its text and detects sections.
func loadResume(path string) (types.SectionMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}

	text, err := ingestion.ExtractText(data, path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}

	return sectioning.Segment(ingestion.NormalizeText(text)), nil
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/ats-optimizer/internal/ingestion"
	"github.com/jonathan/ats-optimizer/internal/jdintel"
	"github.com/spf13/cobra"
)

var extractJDPath string

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract intelligence from a job description",
	Long:  `Extract the role, seniority, skills, tools and keywords from a job description text file and print them as JSON.`,
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractJDPath, "jd", "j", "", "Path to job description text file")
	_ = extractCmd.MarkFlagRequired("jd")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(extractJDPath)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	intelligence := jdintel.Extract(ingestion.CleanJD(string(data)))

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(intelligence)
}

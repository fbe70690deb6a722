package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/application-verifier/internal/posting"
	"github.com/jonathan/application-verifier/internal/types"
)

var verifyCoverLetterCmd = &cobra.Command{
	Use:   "verify-cover-letter",
	Short: "Verify generated cover-letter text against the candidate profile",
	Long:  "Verify a generated cover letter against the candidate profile. Company facts (--facts) sourced from the job posting are checked for literal presence in the job text (--job). Exits 1 on FAIL.",
	RunE:  runVerifyCoverLetter,
}

var (
	clProfileFile   string
	clInputFile     string
	clOutputFile    string
	clJobFile       string
	clFactsFile     string
	clClaimedIDs    []string
	clConfigFile    string
	clBlacklistFile string
	clVerbose       bool
)

func init() {
	verifyCoverLetterCmd.Flags().StringVarP(&clProfileFile, "profile", "p", "", "Path to candidate profile JSON (required)")
	verifyCoverLetterCmd.Flags().StringVarP(&clInputFile, "in", "i", "", "Path to cover-letter text file (required)")
	verifyCoverLetterCmd.Flags().StringVarP(&clOutputFile, "out", "o", "", "Path to output result JSON (default stdout)")
	verifyCoverLetterCmd.Flags().StringVar(&clJobFile, "job", "", "Path to job posting text (.html is stripped to text first)")
	verifyCoverLetterCmd.Flags().StringVar(&clFactsFile, "facts", "", "Path to company facts JSON array")
	verifyCoverLetterCmd.Flags().StringSliceVar(&clClaimedIDs, "claimed", nil, "Experience entry IDs the document claims to draw from")
	verifyCoverLetterCmd.Flags().StringVar(&clConfigFile, "config", "", "Path to verification config JSON (default built-in)")
	verifyCoverLetterCmd.Flags().StringVar(&clBlacklistFile, "blacklist", "", "Path to blacklist YAML (default from config)")
	verifyCoverLetterCmd.Flags().BoolVarP(&clVerbose, "verbose", "v", false, "Print boxed result summary to stderr")

	_ = verifyCoverLetterCmd.MarkFlagRequired("profile")
	_ = verifyCoverLetterCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(verifyCoverLetterCmd)
}

func runVerifyCoverLetter(_ *cobra.Command, _ []string) error {
	runner, err := loadRunner(clProfileFile, clConfigFile, clBlacklistFile)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(clInputFile)
	if err != nil {
		return fmt.Errorf("failed to read cover-letter file: %w", err)
	}

	jobText, err := loadJobText(clJobFile)
	if err != nil {
		return err
	}

	var facts []types.CompanyFact
	if clFactsFile != "" {
		data, err := os.ReadFile(clFactsFile)
		if err != nil {
			return fmt.Errorf("failed to read facts file: %w", err)
		}
		if err := json.Unmarshal(data, &facts); err != nil {
			return fmt.Errorf("failed to parse facts JSON: %w", err)
		}
	}

	result := runner.VerifyCoverLetter(string(content), clClaimedIDs, facts, jobText)
	if err := writeResult(result, clOutputFile, clVerbose); err != nil {
		return err
	}
	return verdictError(result)
}

// loadJobText reads the job posting text, extracting body text when given a
// saved HTML page.
func loadJobText(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".html") {
		text, err := posting.ExtractText(string(data))
		if err != nil {
			return "", fmt.Errorf("failed to extract job text: %w", err)
		}
		return text, nil
	}
	return string(data), nil
}

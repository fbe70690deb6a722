package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/application-verifier/internal/types"
)

var verifyQuestionsCmd = &cobra.Command{
	Use:   "verify-questions",
	Short: "Verify application-question answers",
	Long:  "Verify a JSON array of application-question answers. Every answer is scanned against the blacklist; profile-derived answers are additionally checked for grounding in the candidate profile. Exits 1 on FAIL.",
	RunE:  runVerifyQuestions,
}

var (
	questionsProfileFile   string
	questionsInputFile     string
	questionsOutputFile    string
	questionsConfigFile    string
	questionsBlacklistFile string
	questionsVerbose       bool
)

func init() {
	verifyQuestionsCmd.Flags().StringVarP(&questionsProfileFile, "profile", "p", "", "Path to candidate profile JSON (required)")
	verifyQuestionsCmd.Flags().StringVarP(&questionsInputFile, "in", "i", "", "Path to answers JSON array (required)")
	verifyQuestionsCmd.Flags().StringVarP(&questionsOutputFile, "out", "o", "", "Path to output result JSON (default stdout)")
	verifyQuestionsCmd.Flags().StringVar(&questionsConfigFile, "config", "", "Path to verification config JSON (default built-in)")
	verifyQuestionsCmd.Flags().StringVar(&questionsBlacklistFile, "blacklist", "", "Path to blacklist YAML (default from config)")
	verifyQuestionsCmd.Flags().BoolVarP(&questionsVerbose, "verbose", "v", false, "Print boxed result summary to stderr")

	_ = verifyQuestionsCmd.MarkFlagRequired("profile")
	_ = verifyQuestionsCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(verifyQuestionsCmd)
}

func runVerifyQuestions(_ *cobra.Command, _ []string) error {
	runner, err := loadRunner(questionsProfileFile, questionsConfigFile, questionsBlacklistFile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(questionsInputFile)
	if err != nil {
		return fmt.Errorf("failed to read answers file: %w", err)
	}

	var answers []types.AppAnswer
	if err := json.Unmarshal(data, &answers); err != nil {
		return fmt.Errorf("failed to parse answers JSON: %w", err)
	}

	result := runner.VerifyAppQuestions(answers)
	if err := writeResult(result, questionsOutputFile, questionsVerbose); err != nil {
		return err
	}
	return verdictError(result)
}

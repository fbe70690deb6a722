// Package main provides the entry point for the Application Verifier CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "verify_agent",
	Short: "Deterministic verification of generated application materials",
	Long:  "Application Verifier checks generated resumes, cover letters, and application-question answers against a structured candidate profile using deterministic rules: claim grounding, number verification, vocabulary blacklists, structural fingerprints, and skill-level comparison.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

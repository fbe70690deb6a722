package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/application-verifier/internal/observability"
	"github.com/jonathan/application-verifier/internal/posting"
)

var checkPostingCmd = &cobra.Command{
	Use:   "check-posting",
	Short: "Check whether a job-posting URL is still live",
	Long:  "Probe a job-posting URL: 404/410 mean the posting was removed, other non-200 responses and expired-signal pages count as not live. Exits 1 when the posting is not live.",
	RunE:  runCheckPosting,
}

var (
	postingURL     string
	postingTimeout time.Duration
	postingVerbose bool
)

func init() {
	checkPostingCmd.Flags().StringVarP(&postingURL, "url", "u", "", "Job posting URL (required)")
	checkPostingCmd.Flags().DurationVar(&postingTimeout, "timeout", posting.DefaultTimeout, "Probe timeout")
	checkPostingCmd.Flags().BoolVarP(&postingVerbose, "verbose", "v", false, "Print boxed status to stderr")

	_ = checkPostingCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(checkPostingCmd)
}

func runCheckPosting(_ *cobra.Command, _ []string) error {
	checker := posting.NewCheckerWithClient(&http.Client{Timeout: postingTimeout})

	result, err := checker.IsLive(context.Background(), postingURL)
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)

	if postingVerbose {
		observability.NewPrinter(os.Stderr).PrintLiveness(result)
	}

	if !result.Live {
		return fmt.Errorf("posting not live: %s", result.Notes)
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/application-verifier/internal/types"
)

var verifyResumeCmd = &cobra.Command{
	Use:   "verify-resume",
	Short: "Verify generated resume text against the candidate profile",
	Long:  "Verify one or more generated resume files against the candidate profile. Multiple --in files are verified concurrently; results keep input order. Exits 1 if any resume fails.",
	RunE:  runVerifyResume,
}

var (
	resumeProfileFile   string
	resumeInputFiles    []string
	resumeOutputFile    string
	resumeOutputDir     string
	resumeClaimedIDs    []string
	resumeConfigFile    string
	resumeBlacklistFile string
	resumeVerbose       bool
)

func init() {
	verifyResumeCmd.Flags().StringVarP(&resumeProfileFile, "profile", "p", "", "Path to candidate profile JSON (required)")
	verifyResumeCmd.Flags().StringArrayVarP(&resumeInputFiles, "in", "i", nil, "Path to resume text file (repeatable for batch verification)")
	verifyResumeCmd.Flags().StringVarP(&resumeOutputFile, "out", "o", "", "Path to output result JSON (single --in only; default stdout)")
	verifyResumeCmd.Flags().StringVar(&resumeOutputDir, "out-dir", "", "Directory for per-input result files (batch mode)")
	verifyResumeCmd.Flags().StringSliceVar(&resumeClaimedIDs, "claimed", nil, "Experience entry IDs the document claims to draw from")
	verifyResumeCmd.Flags().StringVar(&resumeConfigFile, "config", "", "Path to verification config JSON (default built-in)")
	verifyResumeCmd.Flags().StringVar(&resumeBlacklistFile, "blacklist", "", "Path to blacklist YAML (default from config)")
	verifyResumeCmd.Flags().BoolVarP(&resumeVerbose, "verbose", "v", false, "Print boxed result summary to stderr")

	_ = verifyResumeCmd.MarkFlagRequired("profile")
	_ = verifyResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(verifyResumeCmd)
}

func runVerifyResume(_ *cobra.Command, _ []string) error {
	if len(resumeInputFiles) > 1 && resumeOutputFile != "" {
		return fmt.Errorf("--out only applies to a single --in; use --out-dir for batches")
	}

	runner, err := loadRunner(resumeProfileFile, resumeConfigFile, resumeBlacklistFile)
	if err != nil {
		return err
	}

	// Fan out across inputs; the results slice keeps input order.
	results := make([]*types.VerificationResult, len(resumeInputFiles))
	var g errgroup.Group
	for i, inputFile := range resumeInputFiles {
		i, inputFile := i, inputFile
		g.Go(func() error {
			content, err := os.ReadFile(inputFile)
			if err != nil {
				return fmt.Errorf("failed to read resume file %s: %w", inputFile, err)
			}
			results[i] = runner.VerifyResume(string(content), resumeClaimedIDs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for i, result := range results {
		outPath := resumeOutputFile
		if resumeOutputDir != "" {
			outPath = resultPath(resumeOutputDir, resumeInputFiles[i])
		}
		if err := writeResult(result, outPath, resumeVerbose); err != nil {
			return err
		}
		if result.Status == types.StatusFail {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("verification failed for %d of %d resume(s)", failed, len(results))
	}
	return nil
}

// resultPath derives the per-input result filename for batch output.
func resultPath(dir, inputFile string) string {
	base := filepath.Base(inputFile)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+".result.json")
}

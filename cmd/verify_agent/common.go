package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/application-verifier/internal/config"
	"github.com/jonathan/application-verifier/internal/nlp"
	"github.com/jonathan/application-verifier/internal/observability"
	"github.com/jonathan/application-verifier/internal/profile"
	"github.com/jonathan/application-verifier/internal/schemas"
	"github.com/jonathan/application-verifier/internal/similarity"
	"github.com/jonathan/application-verifier/internal/types"
	"github.com/jonathan/application-verifier/internal/verification"
)

// loadProfile reads and unmarshals the candidate profile, validating it
// against the shipped schema when the schema file can be found. Validation
// failures are hard errors; an unresolvable schema only warns.
func loadProfile(path string) (*types.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.ProfileSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return nil, fmt.Errorf("profile does not validate against schema: %w", err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate profile against schema: %v\n", err)
		}
	}

	var prof types.Profile
	if err := json.Unmarshal(data, &prof); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &prof, nil
}

// loadRunner builds the verification pipeline from the common CLI flags.
// A missing blacklist file at the default path degrades to an empty
// blacklist; an explicitly flagged path must exist.
func loadRunner(profilePath, configPath, blacklistPath string) (*verification.Runner, error) {
	prof, err := loadProfile(profilePath)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	explicit := blacklistPath != ""
	if !explicit {
		blacklistPath = cfg.BlacklistPath
	}

	bl, err := config.LoadBlacklist(blacklistPath)
	if err != nil {
		if explicit {
			return nil, err
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: No blacklist at %s, scanning disabled: %v\n", blacklistPath, err)
		bl = &config.Blacklist{}
	}

	index := profile.NewIndex(prof)
	return verification.NewRunner(index, *cfg, bl, similarity.NewLevenshtein(), nlp.NewProseTagger()), nil
}

// writeResult emits a verification result as indented JSON to outPath, or to
// stdout when outPath is empty. File output is validated against the result
// schema; validation problems only warn, the result was already produced.
func writeResult(result *types.VerificationResult, outPath string, verbose bool) error {
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if outPath == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
	} else {
		if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write result file: %w", err)
		}
		if schemaPath := schemas.ResolveSchemaPath(schemas.VerificationResultSchema); schemaPath != "" {
			if err := schemas.ValidateJSON(schemaPath, outPath); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Result does not validate against schema: %v\n", err)
			}
		}
	}

	if verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintResult(result)
		printer.PrintSourceMap(result.SourceMap)
	}

	return nil
}

// verdictError turns a FAIL verdict into a non-nil error so the process
// exits 1 and callers can gate on it.
func verdictError(result *types.VerificationResult) error {
	if result.Status != types.StatusFail {
		return nil
	}
	return fmt.Errorf("verification failed: %d high-severity issue(s), score %d/100",
		result.HighCount, result.QualityScore)
}

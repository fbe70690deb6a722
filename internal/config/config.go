// Package config provides configuration loading and validation for the verification engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config holds the tuning knobs of the verification pipeline. All fields are
// optional in the JSON file; missing values fall back to Default(). The match
// thresholds are empirically tuned constants, not analytically derived
// cutoffs; re-validate them against fixtures before changing.
type Config struct {
	// Source-mapper match thresholds per content type. The cover-letter
	// threshold is lower because sentences blend company and candidate
	// assertions, which depresses raw similarity.
	ResumeMatchThreshold      float64 `json:"resume_match_threshold,omitempty" validate:"gte=0,lte=1"`
	CoverLetterMatchThreshold float64 `json:"cover_letter_match_threshold,omitempty" validate:"gte=0,lte=1"`

	// Structural detector limits
	MaxConsecutiveParallelBullets int      `json:"max_consecutive_parallel_bullets,omitempty" validate:"gte=0"`
	MaxTricolonLists              int      `json:"max_tricolon_lists,omitempty" validate:"gte=0"`
	MaxConnectorWords             int      `json:"max_connector_words,omitempty" validate:"gte=0"`
	ConnectorWords                []string `json:"connector_words,omitempty"`

	// Length-uniformity thresholds (population coefficient of variation)
	ParagraphBalanceCVThreshold   float64 `json:"paragraph_balance_cv_threshold,omitempty" validate:"gte=0"`
	SentenceUniformityCVThreshold float64 `json:"sentence_uniformity_cv_threshold,omitempty" validate:"gte=0"`
	MinSentencesForUniformity     int     `json:"min_sentences_for_uniformity,omitempty" validate:"gte=0"`

	// BlacklistPath points at the YAML blacklist file (words, phrases,
	// context-dependent exceptions).
	BlacklistPath string `json:"blacklist_path,omitempty"`
}

// Default returns the shipped configuration.
func Default() Config {
	return Config{
		ResumeMatchThreshold:          0.30,
		CoverLetterMatchThreshold:     0.25,
		MaxConsecutiveParallelBullets: 3,
		MaxTricolonLists:              1,
		MaxConnectorWords:             2,
		ConnectorWords: []string{
			"moreover", "furthermore", "additionally", "consequently", "thus",
		},
		ParagraphBalanceCVThreshold:   0.15,
		SentenceUniformityCVThreshold: 0.20,
		MinSentencesForUniformity:     5,
		BlacklistPath:                 filepath.Join("config", "ai_blacklist.yaml"),
	}
}

// Load reads configuration from a JSON file and fills missing values from
// Default(). An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	defaults := Default()
	if path == "" {
		return &defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	merged := cfg.MergeWithDefaults(defaults)
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	return &merged, nil
}

// Validate checks numeric ranges via struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Callers that genuinely want a zero threshold should set it after
// merging; a caller supplying a partial config still gets a fully functional
// pipeline.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ResumeMatchThreshold == 0 {
		result.ResumeMatchThreshold = defaults.ResumeMatchThreshold
	}
	if result.CoverLetterMatchThreshold == 0 {
		result.CoverLetterMatchThreshold = defaults.CoverLetterMatchThreshold
	}
	if result.MaxConsecutiveParallelBullets == 0 {
		result.MaxConsecutiveParallelBullets = defaults.MaxConsecutiveParallelBullets
	}
	if result.MaxTricolonLists == 0 {
		result.MaxTricolonLists = defaults.MaxTricolonLists
	}
	if result.MaxConnectorWords == 0 {
		result.MaxConnectorWords = defaults.MaxConnectorWords
	}
	if len(result.ConnectorWords) == 0 {
		result.ConnectorWords = defaults.ConnectorWords
	}
	if result.ParagraphBalanceCVThreshold == 0 {
		result.ParagraphBalanceCVThreshold = defaults.ParagraphBalanceCVThreshold
	}
	if result.SentenceUniformityCVThreshold == 0 {
		result.SentenceUniformityCVThreshold = defaults.SentenceUniformityCVThreshold
	}
	if result.MinSentencesForUniformity == 0 {
		result.MinSentencesForUniformity = defaults.MinSentencesForUniformity
	}
	if result.BlacklistPath == "" {
		result.BlacklistPath = defaults.BlacklistPath
	}

	return result
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Blacklist holds the banned-vocabulary configuration for the scanner.
// Phrases are matched as exact substrings (HIGH severity); words are matched
// on word boundaries with simple inflections (MEDIUM severity).
// ContextDependent maps a word to exception terms: an occurrence near any
// exception term is not flagged (e.g. "robust" near "standard error").
type Blacklist struct {
	Words            []string            `yaml:"words"`
	Phrases          []string            `yaml:"phrases"`
	ContextDependent map[string][]string `yaml:"context_dependent"`
}

// LoadBlacklist reads the blacklist YAML file. An empty or sparse file yields
// empty lists, not an error.
func LoadBlacklist(path string) (*Blacklist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read blacklist file %s: %w", path, err)
	}

	var bl Blacklist
	if err := yaml.Unmarshal(data, &bl); err != nil {
		return nil, fmt.Errorf("failed to parse blacklist YAML: %w", err)
	}

	return &bl, nil
}

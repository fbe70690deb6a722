// Package similarity provides string-similarity scoring used by the source mapper.
package similarity

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Scorer computes a normalized similarity between two strings.
//
// Implementations must be symmetric, return a score in [0,1], and return 1.0
// only when the normalized inputs are identical. Changing the algorithm shifts
// the effective calibration of the match thresholds, so thresholds must be
// re-validated against fixtures when swapping implementations.
type Scorer interface {
	Score(a, b string) float64
}

// Levenshtein scores strings by edit-distance ratio: 1 − distance/maxLen,
// computed over the lowercased, whitespace-trimmed inputs.
type Levenshtein struct{}

// NewLevenshtein returns the default edit-distance Scorer.
func NewLevenshtein() *Levenshtein {
	return &Levenshtein{}
}

// Score implements Scorer.
func (l *Levenshtein) Score(a, b string) float64 {
	a = normalize(a)
	b = normalize(b)

	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	dist := levenshtein.ComputeDistance(a, b)
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}

	return 1.0 - float64(dist)/float64(maxLen)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

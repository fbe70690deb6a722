// Package verification implements the rule-based checks that validate
// generated application documents against the candidate profile: claim
// grounding, number verification, vocabulary scanning, structural AI-pattern
// detection, and skill-level checking.
package verification

import (
	"regexp"
	"strings"

	"github.com/jonathan/application-verifier/internal/types"
)

var (
	bulletPattern    = regexp.MustCompile(`^[-*•]\s+`)
	dateRangePattern = regexp.MustCompile(`(?i)^\d{4}\s*[-–—]\s*(\d{4}|present)`)
	sentenceSplitPat = regexp.MustCompile(`([.!?])\s+`)
)

// contentSections are the resume sections whose non-bullet lines are treated
// as claims.
var contentSections = map[string]bool{
	"experience":   true,
	"education":    true,
	"publications": true,
	"skills":       true,
}

// ClaimExtractor decomposes generated documents into ordered claim units.
type ClaimExtractor struct{}

// NewClaimExtractor returns a stateless extractor.
func NewClaimExtractor() *ClaimExtractor {
	return &ClaimExtractor{}
}

// ExtractFromResume splits a markdown resume into claim units. Header lines
// set the current section and are never claims themselves; bulleted lines are
// bullet claims in any section; other non-empty lines are claims only inside
// the content sections, typed structural or content by heuristic.
func (e *ClaimExtractor) ExtractFromResume(content string) []types.Claim {
	var claims []types.Claim
	lines := strings.Split(strings.TrimSpace(content), "\n")
	currentSection := ""

	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if strings.HasPrefix(stripped, "#") {
			currentSection = strings.ToLower(strings.TrimSpace(strings.TrimLeft(stripped, "#")))
			continue
		}
		if bulletPattern.MatchString(stripped) {
			claims = append(claims, types.Claim{
				Text:       bulletPattern.ReplaceAllString(stripped, ""),
				Type:       types.ClaimBullet,
				LineNumber: i + 1,
				Section:    currentSection,
			})
			continue
		}
		if contentSections[currentSection] {
			claimType := types.ClaimContent
			if isStructural(stripped) {
				claimType = types.ClaimStructural
			}
			claims = append(claims, types.Claim{
				Text:       stripped,
				Type:       claimType,
				LineNumber: i + 1,
				Section:    currentSection,
			})
		}
	}

	return claims
}

// ExtractFromCoverLetter splits prose into sentence claims, one per sentence,
// preserving order. Empty input yields no claims.
func (e *ClaimExtractor) ExtractFromCoverLetter(text string) []types.Claim {
	var claims []types.Claim
	for i, sentence := range splitSentences(text) {
		claims = append(claims, types.Claim{
			Text:          sentence,
			Type:          types.ClaimSentence,
			SentenceIndex: i,
		})
	}
	return claims
}

// splitSentences splits text on sentence-ending punctuation followed by
// whitespace, dropping empty fragments.
func splitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	// Keep the terminating punctuation with its sentence.
	marked := sentenceSplitPat.ReplaceAllString(text, "$1\x00")
	var sentences []string
	for _, s := range strings.Split(marked, "\x00") {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// isStructural reports whether a resume line encodes layout metadata
// (company/title/date) rather than an assertion requiring grounding.
// The short-line threshold is 3 words, not 4, so short content lines such as
// a 4-word publication reference are not misclassified.
func isStructural(line string) bool {
	if strings.ContainsAny(line, "|—–") {
		return true
	}
	if dateRangePattern.MatchString(line) {
		return true
	}
	if len(strings.Fields(line)) <= 3 && !strings.ContainsAny(line, ".!?") {
		return true
	}
	return false
}

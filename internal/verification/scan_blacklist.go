package verification

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/application-verifier/internal/config"
	"github.com/jonathan/application-verifier/internal/types"
)

// exceptionWindow is how many characters around a context-dependent word are
// searched for exception terms.
const exceptionWindow = 80

// BlacklistScanner detects AI-telltale vocabulary: exact phrases (HIGH) and
// single words with simple inflections (MEDIUM), with per-word
// context-dependent exemptions.
type BlacklistScanner struct {
	words            []string
	phrases          []string
	contextDependent map[string][]string
}

// NewBlacklistScanner builds a scanner from blacklist configuration. A nil
// blacklist yields a scanner that never flags.
func NewBlacklistScanner(bl *config.Blacklist) *BlacklistScanner {
	if bl == nil {
		bl = &config.Blacklist{}
	}
	return &BlacklistScanner{
		words:            bl.Words,
		phrases:          bl.Phrases,
		contextDependent: bl.ContextDependent,
	}
}

// Check scans content for blacklisted phrases and words. Each qualifying
// occurrence produces its own issue.
func (s *BlacklistScanner) Check(content string) []types.Issue {
	var issues []types.Issue
	contentLower := strings.ToLower(content)

	for _, phrase := range s.phrases {
		phraseLower := strings.ToLower(strings.TrimSpace(phrase))
		if phraseLower == "" {
			continue
		}
		occurrences := strings.Count(contentLower, phraseLower)
		for i := 0; i < occurrences; i++ {
			issues = append(issues, types.Issue{
				Type:     types.IssueAIPhrase,
				Severity: types.SeverityHigh,
				Text:     phrase,
				Message:  fmt.Sprintf("Blacklisted phrase: '%s'", phrase),
			})
		}
	}

	for _, word := range s.words {
		wordLower := strings.ToLower(word)

		// Match the word plus common suffixes, e.g. "leverage" also matches
		// "leveraged" and "leverages".
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(wordLower) + `[ds]?\b`)
		occurrences := pattern.FindAllStringIndex(content, -1)
		if len(occurrences) == 0 {
			continue
		}

		exceptions, contextual := s.contextDependent[wordLower]
		for _, occ := range occurrences {
			if contextual && hasExceptionTerm(content, occ[0], occ[1], exceptions) {
				continue
			}
			msg := fmt.Sprintf("Blacklisted: '%s'", word)
			if contextual {
				msg = fmt.Sprintf("Blacklisted: '%s' (no exception context)", word)
			}
			issues = append(issues, types.Issue{
				Type:     types.IssueAIVocabulary,
				Severity: types.SeverityMedium,
				Text:     word,
				Message:  msg,
			})
		}
	}

	return issues
}

// hasExceptionTerm reports whether any exception term appears in the window
// around an occurrence.
func hasExceptionTerm(content string, start, end int, exceptions []string) bool {
	winStart := start - exceptionWindow
	if winStart < 0 {
		winStart = 0
	}
	winEnd := end + exceptionWindow
	if winEnd > len(content) {
		winEnd = len(content)
	}
	window := strings.ToLower(content[winStart:winEnd])

	for _, term := range exceptions {
		if strings.Contains(window, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

package verification

import (
	"fmt"
	"strings"

	"github.com/jonathan/application-verifier/internal/profile"
	"github.com/jonathan/application-verifier/internal/similarity"
	"github.com/jonathan/application-verifier/internal/types"
)

// ContentType selects the matching threshold for a document.
type ContentType string

// Content types accepted by the mapper.
const (
	ContentResume      ContentType = "resume"
	ContentCoverLetter ContentType = "cover_letter"
)

// companySignals mark sentences that talk about the employer; candidateSignals
// mark sentences that talk about the candidate. The trailing/leading spaces
// keep the substring checks word-boundary safe.
var (
	companySignals   = []string{"your ", "the company", "the team", "the role", "this position"}
	candidateSignals = []string{" i ", "i've", "i'd", " my ", " we "}
)

// SourceMapper finds, for each claim, the best-matching profile entry.
// Source maps are built by code, never by the drafting model.
type SourceMapper struct {
	index           *profile.Index
	scorer          similarity.Scorer
	resumeThreshold float64
	coverThreshold  float64
}

// NewSourceMapper builds a mapper over the session index. The scorer decides
// the similarity algorithm; thresholds come from configuration.
func NewSourceMapper(index *profile.Index, scorer similarity.Scorer, resumeThreshold, coverLetterThreshold float64) *SourceMapper {
	return &SourceMapper{
		index:           index,
		scorer:          scorer,
		resumeThreshold: resumeThreshold,
		coverThreshold:  coverLetterThreshold,
	}
}

// MapClaims maps every claim to its best profile entry and classifies it.
// priorityIDs are search hints from the drafting stage: those entries are
// searched first, but the globally best match wins regardless. Unmatched
// claims carry an UNGROUNDED_CLAIM issue naming the best candidate and score.
func (m *SourceMapper) MapClaims(claims []types.Claim, priorityIDs []string, contentType ContentType) []types.MappedClaim {
	threshold := m.resumeThreshold
	if contentType == ContentCoverLetter {
		threshold = m.coverThreshold
	}

	results := make([]types.MappedClaim, 0, len(claims))
	for _, claim := range claims {
		if claim.Type == types.ClaimStructural {
			match := m.matchStructural(claim)
			results = append(results, types.MappedClaim{
				Claim:  claim,
				Match:  &match,
				Status: types.StatusStructural,
			})
			continue
		}

		if contentType == ContentCoverLetter && isCompanyClaim(claim.Text) {
			results = append(results, types.MappedClaim{
				Claim:  claim,
				Status: types.StatusCompanyClaimSkipped,
			})
			continue
		}

		best := m.findBestMatch(claim.Text, priorityIDs)
		entry := types.MappedClaim{Claim: claim, Match: &best, Status: types.StatusMatched}
		if best.Score < threshold {
			entry.Status = types.StatusUnmatched
			entry.Issue = &types.Issue{
				Type:     types.IssueUngroundedClaim,
				Severity: types.SeverityHigh,
				Message: fmt.Sprintf("Line %d: '%s' (best match: %s at %.2f)",
					claim.LineNumber, truncate(claim.Text, 80), best.EntryID, best.Score),
			}
		}
		results = append(results, entry)
	}

	return results
}

// isCompanyClaim detects pure company-claim sentences in cover letters: the
// sentence references the employer and never the candidate. Mixed sentences
// are not skipped; they contain candidate claims that need grounding.
func isCompanyClaim(text string) bool {
	lower := strings.ToLower(text)

	company := false
	for _, w := range companySignals {
		if strings.Contains(lower, w) {
			company = true
			break
		}
	}
	if !company {
		return false
	}

	for _, w := range candidateSignals {
		if strings.Contains(lower, w) {
			return false
		}
	}
	if strings.HasPrefix(lower, "i ") || strings.HasPrefix(lower, "i'") {
		return false
	}

	return true
}

// findBestMatch scans experience accomplishments and responsibilities (in
// priority order), then publication titles, then education entries, keeping
// the highest-scoring candidate.
func (m *SourceMapper) findBestMatch(claimText string, priorityIDs []string) types.Match {
	claimLower := strings.ToLower(claimText)
	best := types.Match{}

	experience := m.index.Profile.Experience
	ordered := experience
	if len(priorityIDs) > 0 {
		prioritySet := make(map[string]bool, len(priorityIDs))
		for _, id := range priorityIDs {
			prioritySet[id] = true
		}
		ordered = make([]types.ExperienceEntry, 0, len(experience))
		for _, e := range experience {
			if prioritySet[e.ID] {
				ordered = append(ordered, e)
			}
		}
		for _, e := range experience {
			if !prioritySet[e.ID] {
				ordered = append(ordered, e)
			}
		}
	}

	for _, exp := range ordered {
		for _, field := range []struct {
			name  string
			items []string
		}{
			{"accomplishments", exp.Accomplishments},
			{"responsibilities", exp.Responsibilities},
		} {
			for i, item := range field.items {
				if score := m.scorer.Score(claimLower, strings.ToLower(item)); score > best.Score {
					best = types.Match{
						EntryID:      exp.ID,
						Score:        score,
						MatchedField: fmt.Sprintf("%s[%d]", field.name, i),
						MatchedText:  item,
					}
				}
			}
		}
	}

	for _, pub := range m.index.Profile.Publications {
		if score := m.scorer.Score(claimLower, strings.ToLower(pub.Title)); score > best.Score {
			best = types.Match{
				EntryID:      pub.ID,
				Score:        score,
				MatchedField: "title",
				MatchedText:  pub.Title,
			}
		}
	}

	for _, edu := range m.index.Profile.Education {
		eduText := strings.ToLower(fmt.Sprintf("%s %s %s", edu.Degree, edu.Field, edu.Institution))
		if score := m.scorer.Score(claimLower, eduText); score > best.Score {
			best = types.Match{
				EntryID:      edu.ID,
				Score:        score,
				MatchedField: "education",
				MatchedText:  eduText,
			}
		}
	}

	return best
}

// matchStructural verifies layout lines (company names, titles) against the
// index: exact substring match scores 1.0, otherwise the best fuzzy score
// across organizations. Structural claims never face the free-text threshold.
func (m *SourceMapper) matchStructural(claim types.Claim) types.Match {
	textLower := strings.ToLower(claim.Text)

	for _, exp := range m.index.Profile.Experience {
		org := m.index.Orgs[exp.ID]
		if org != "" && strings.Contains(textLower, strings.ToLower(org)) {
			return types.Match{
				EntryID:      exp.ID,
				Score:        1.0,
				MatchedField: "organization",
				MatchedText:  org,
			}
		}
	}

	for _, exp := range m.index.Profile.Experience {
		title := m.index.Titles[exp.ID]
		if title != "" && strings.Contains(textLower, strings.ToLower(title)) {
			return types.Match{
				EntryID:      exp.ID,
				Score:        1.0,
				MatchedField: "title",
				MatchedText:  title,
			}
		}
	}

	best := types.Match{}
	for _, exp := range m.index.Profile.Experience {
		org := m.index.Orgs[exp.ID]
		if score := m.scorer.Score(textLower, strings.ToLower(org)); score > best.Score {
			best = types.Match{
				EntryID:      exp.ID,
				Score:        score,
				MatchedField: "organization",
				MatchedText:  org,
			}
		}
	}

	return best
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

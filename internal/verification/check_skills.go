package verification

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/application-verifier/internal/profile"
	"github.com/jonathan/application-verifier/internal/types"
)

// levelRank orders proficiency levels for over-claim comparison. Skills
// listed without an explicit tier rank with "proficient".
var levelRank = map[string]int{
	"familiar":   1,
	"proficient": 2,
	"listed":     2,
	"expert":     3,
}

// defaultRank applies to unknown level names.
const defaultRank = 2

// Indicator vocabularies checked in descending order of claimed strength;
// the first list with a hit wins.
var (
	expertIndicators     = []string{"expert", "advanced", "deep expertise", "extensive experience", "mastery"}
	proficientIndicators = []string{"proficient", "experienced", "strong", "solid"}
	familiarIndicators   = []string{"familiar", "exposure", "basic", "some experience"}
)

// SkillLevelChecker flags skills claimed above their profile-declared
// proficiency level.
type SkillLevelChecker struct {
	index *profile.Index
}

// NewSkillLevelChecker builds a checker over the session index.
func NewSkillLevelChecker(index *profile.Index) *SkillLevelChecker {
	return &SkillLevelChecker{index: index}
}

// Check locates every profile-skill mention in content, detects nearby
// level-indicator vocabulary, and emits at most one SKILL_LEVEL_OVERCLAIM
// issue per skill when the claimed rank exceeds the declared rank. A bare
// mention with no indicator is not a claim.
func (c *SkillLevelChecker) Check(content string) []types.Issue {
	var issues []types.Issue
	contentLower := strings.ToLower(content)

	for _, skillName := range sortedSkillNames(c.index.SkillsFlat) {
		profileLevel := c.index.SkillsFlat[skillName]

		// Word-boundary matching; short names (e.g. "R") are matched
		// case-sensitively against the raw text so "R" never matches inside
		// "Research".
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(skillName) + `\b`)
		haystack := contentLower
		if len(skillName) <= 2 {
			haystack = content
		}

		for _, occ := range pattern.FindAllStringIndex(haystack, -1) {
			start := occ[0] - exceptionWindow
			if start < 0 {
				start = 0
			}
			end := occ[1] + exceptionWindow
			if end > len(content) {
				end = len(content)
			}
			window := strings.ToLower(content[start:end])

			claimedLevel := detectLevel(window)
			if claimedLevel == "" {
				continue
			}

			profileRank := rankOf(profileLevel)
			claimedRank := rankOf(claimedLevel)
			if claimedRank <= profileRank {
				continue
			}

			severity := types.SeverityMedium
			if claimedRank-profileRank >= 2 {
				severity = types.SeverityHigh
			}
			issues = append(issues, types.Issue{
				Type:         types.IssueSkillLevelOverclaim,
				Severity:     severity,
				Skill:        skillName,
				ClaimedLevel: claimedLevel,
				ProfileLevel: profileLevel,
				Message: fmt.Sprintf("Skill '%s' claimed as '%s' but profile says '%s'",
					skillName, claimedLevel, profileLevel),
			})
			break // one flag per skill is enough
		}
	}

	return issues
}

// detectLevel returns the proficiency level claimed in a text window, or ""
// when no indicator is present. The window is already lowercased.
func detectLevel(window string) string {
	for _, ind := range expertIndicators {
		if strings.Contains(window, ind) {
			return "expert"
		}
	}
	for _, ind := range proficientIndicators {
		if strings.Contains(window, ind) {
			return "proficient"
		}
	}
	for _, ind := range familiarIndicators {
		if strings.Contains(window, ind) {
			return "familiar"
		}
	}
	return ""
}

func rankOf(level string) int {
	if rank, ok := levelRank[level]; ok {
		return rank
	}
	return defaultRank
}

// sortedSkillNames fixes the iteration order so repeated runs emit issues in
// the same order.
func sortedSkillNames(skills map[string]string) []string {
	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

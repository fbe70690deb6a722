package verification

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/application-verifier/internal/profile"
	"github.com/jonathan/application-verifier/internal/types"
)

// contextWindow is how many characters around a numeric token are inspected
// when classifying it.
const contextWindow = 60

// Number classifications. Exempt numbers are never flagged, even when they
// also appear in the profile.
const (
	classExemptDate        = "exempt_date"
	classExemptDerived     = "exempt_derived"
	classExemptStructural  = "exempt_structural"
	classNeedsVerification = "needs_verification"
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
	"jan", "feb", "mar", "apr", "jun", "jul", "aug", "sep", "oct", "nov", "dec",
}

// numberTokenPattern matches a numeric token with optional decimal part and
// optional trailing percent sign.
var numberTokenPattern = regexp.MustCompile(`\b(\d+(?:\.\d+)?%?)`)

// NumberChecker flags numeric metrics that cannot be traced to the profile.
type NumberChecker struct {
	index *profile.Index
}

// NewNumberChecker builds a checker over the session index.
func NewNumberChecker(index *profile.Index) *NumberChecker {
	return &NumberChecker{index: index}
}

// Check extracts every numeric token from content, classifies it by its
// surrounding context, and returns an UNVERIFIED_METRIC issue for each token
// that needs verification and is absent from the profile's number set.
func (c *NumberChecker) Check(content string) []types.Issue {
	var issues []types.Issue

	for _, loc := range numberTokenPattern.FindAllStringSubmatchIndex(content, -1) {
		number := content[loc[2]:loc[3]]

		start := loc[2] - contextWindow
		if start < 0 {
			start = 0
		}
		end := loc[3] + contextWindow
		if end > len(content) {
			end = len(content)
		}
		context := strings.ToLower(content[start:end])

		if c.classify(number, context) != classNeedsVerification {
			continue
		}
		if c.index.InProfile(number) {
			continue
		}

		trimmed := strings.TrimSpace(context)
		issues = append(issues, types.Issue{
			Type:     types.IssueUnverifiedMetric,
			Severity: types.SeverityHigh,
			Number:   number,
			Context:  trimmed,
			Message:  fmt.Sprintf("Metric '%s' not in profile. Context: %s", number, trimmed),
		})
	}

	return issues
}

// classify decides whether a number is exempt. The context argument is
// already lowercased.
func (c *NumberChecker) classify(number, context string) string {
	raw := strings.TrimSuffix(number, "%")
	numVal, numErr := strconv.ParseFloat(raw, 64)
	intVal := int(numVal)

	// Years in the plausible date range
	if numErr == nil && intVal >= 1950 && intVal <= 2030 {
		return classExemptDate
	}

	// Date components from the profile
	if c.index.Dates[number] {
		return classExemptDate
	}

	// Day/month numbers adjacent to a month name
	if numErr == nil && intVal >= 1 && intVal <= 31 {
		for _, month := range monthNames {
			if strings.Contains(context, month) {
				return classExemptDate
			}
		}
	}

	// Derived counts: "N publications" matching the profile count
	quoted := regexp.QuoteMeta(number)
	if regexp.MustCompile(quoted + `\s+publications?`).MatchString(context) &&
		number == c.index.DerivedCounts["num_publications"] {
		return classExemptDerived
	}
	if regexp.MustCompile(quoted + `\s+presentations?`).MatchString(context) &&
		number == c.index.DerivedCounts["num_presentations"] {
		return classExemptDerived
	}

	// Experience duration: "N+ years of experience/expertise"
	if regexp.MustCompile(quoted + `\+?\s+years?\s+of\s+(experience|expertise)`).MatchString(context) {
		return classExemptStructural
	}

	// Page references
	if regexp.MustCompile(`page\s+` + quoted).MatchString(context) {
		return classExemptStructural
	}

	return classNeedsVerification
}

// Package profile builds the read-only lookup index the verification checkers
// run against. The index is constructed once per verification session from the
// candidate profile and is never mutated afterward, so it is safe for
// concurrent readers.
package profile

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/application-verifier/internal/types"
)

// numberPattern matches a numeric token with optional decimal part and
// optional trailing percent sign.
var numberPattern = regexp.MustCompile(`\b(\d+(?:\.\d+)?%?)`)

var (
	yearPattern      = regexp.MustCompile(`\b(\d{4})\b`)
	dateComponentPat = regexp.MustCompile(`\b(\d{1,2})\b`)
)

// DefaultSkillLevel is the proficiency assigned to skills listed without an
// explicit tier. It ranks with "proficient" for over-claim comparisons.
const DefaultSkillLevel = "listed"

// Index holds the derived lookup structures. All fields are populated at
// construction and read-only afterward. Missing profile sections degrade to
// empty collections.
type Index struct {
	// Profile is the source record the index was built from.
	Profile *types.Profile

	// ExperienceText maps experience entry ID to the lowercase concatenation
	// of its text fields.
	ExperienceText map[string]string

	// LegitimateNumbers holds every numeric token found anywhere in the
	// profile, keyed by its verbatim string form.
	LegitimateNumbers map[string]bool

	// Dates holds year and month/day components from date-bearing fields.
	Dates map[string]bool

	// Titles and Orgs map experience entry ID to title and organization.
	Titles map[string]string
	Orgs   map[string]string

	// PubTitles maps publication ID to title.
	PubTitles map[string]string

	// SkillsFlat maps lowercase skill name to declared proficiency level.
	SkillsFlat map[string]string

	// DerivedCounts holds counts computed from the profile, as strings
	// (e.g. "num_publications").
	DerivedCounts map[string]string
}

// NewIndex builds the session index from a profile. A nil profile yields a
// fully empty (but usable) index.
func NewIndex(p *types.Profile) *Index {
	if p == nil {
		p = &types.Profile{}
	}

	idx := &Index{
		Profile:        p,
		ExperienceText: make(map[string]string, len(p.Experience)),
		Titles:         make(map[string]string, len(p.Experience)),
		Orgs:           make(map[string]string, len(p.Experience)),
		PubTitles:      make(map[string]string, len(p.Publications)),
	}

	for _, exp := range p.Experience {
		parts := []string{
			exp.Title,
			exp.Organization,
			strings.Join(exp.Responsibilities, " "),
			strings.Join(exp.Accomplishments, " "),
			strings.Join(exp.ToolsUsed, " "),
			strings.Join(exp.Keywords, " "),
		}
		idx.ExperienceText[exp.ID] = strings.ToLower(strings.Join(parts, " "))
		idx.Titles[exp.ID] = exp.Title
		idx.Orgs[exp.ID] = exp.Organization
	}

	for _, pub := range p.Publications {
		idx.PubTitles[pub.ID] = pub.Title
	}

	idx.LegitimateNumbers = extractAllNumbers(p)
	idx.Dates = extractAllDates(p)
	idx.SkillsFlat = flattenSkills(p.Skills)
	idx.DerivedCounts = map[string]string{
		"num_publications":  strconv.Itoa(len(p.Publications)),
		"num_presentations": strconv.Itoa(len(p.Presentations)),
	}

	return idx
}

// InProfile reports whether a numeric token appears verbatim anywhere in the
// profile or matches one of the derived counts.
func (idx *Index) InProfile(number string) bool {
	if idx.LegitimateNumbers[number] {
		return true
	}
	for _, count := range idx.DerivedCounts {
		if number == count {
			return true
		}
	}
	return false
}

// extractAllNumbers walks the whole profile as a generic value tree and
// collects every numeric token from string leaves. Numeric leaves register
// both their literal form and, when integral, their integer string form (so
// 2.0 also registers as "2").
func extractAllNumbers(p *types.Profile) map[string]bool {
	numbers := make(map[string]bool)

	raw, err := json.Marshal(p)
	if err != nil {
		return numbers
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return numbers
	}

	walkValues(tree, func(leaf any) {
		switch v := leaf.(type) {
		case string:
			for _, m := range numberPattern.FindAllStringSubmatch(v, -1) {
				numbers[m[1]] = true
			}
		case float64:
			if v == 0 {
				return
			}
			numbers[strconv.FormatFloat(v, 'f', -1, 64)] = true
			if v == math.Trunc(v) {
				numbers[strconv.FormatInt(int64(v), 10)] = true
			}
		}
	})

	return numbers
}

// extractAllDates collects date components from the date-bearing fields only:
// experience start/end dates, education completion year, publication year,
// and presentation date. Experience dates contribute both 4-digit years and
// 1-2 digit components (month/day tokens in the same field).
func extractAllDates(p *types.Profile) map[string]bool {
	dates := make(map[string]bool)

	addYears := func(s string) {
		for _, m := range yearPattern.FindAllStringSubmatch(s, -1) {
			dates[m[1]] = true
		}
	}

	for _, exp := range p.Experience {
		for _, field := range []string{exp.StartDate, exp.EndDate} {
			if field == "" {
				continue
			}
			addYears(field)
			for _, m := range dateComponentPat.FindAllStringSubmatch(field, -1) {
				dates[m[1]] = true
			}
		}
	}

	for _, edu := range p.Education {
		if edu.YearCompleted != 0 {
			dates[strconv.Itoa(edu.YearCompleted)] = true
		}
	}

	for _, pub := range p.Publications {
		if pub.Year != 0 {
			dates[strconv.Itoa(pub.Year)] = true
		}
	}

	for _, pres := range p.Presentations {
		if pres.Date != "" {
			addYears(pres.Date)
		}
	}

	return dates
}

// flattenSkills maps every skill name (lowercased) to its proficiency level.
// Tiered programming skills keep their tier name; skills from the flat
// categories get DefaultSkillLevel.
func flattenSkills(s types.SkillSet) map[string]string {
	flat := make(map[string]string)

	for level, skills := range s.Programming {
		for _, skill := range skills {
			flat[strings.ToLower(skill)] = level
		}
	}

	for _, category := range [][]string{
		s.StatisticalMethods,
		s.DomainExpertise,
		s.ToolsAndPlatforms,
		s.SoftSkills,
	} {
		for _, skill := range category {
			flat[strings.ToLower(skill)] = DefaultSkillLevel
		}
	}

	return flat
}

package verification

import (
	"strings"
	"unicode"

	"github.com/jonathan/application-verifier/internal/config"
	"github.com/jonathan/application-verifier/internal/profile"
	"github.com/jonathan/application-verifier/internal/similarity"
	"github.com/jonathan/application-verifier/internal/types"
)

// fixtureProfile is the shared candidate profile used across checker tests.
func fixtureProfile() *types.Profile {
	return &types.Profile{
		Experience: []types.ExperienceEntry{
			{
				ID:           "exp1",
				Title:        "Senior Data Scientist",
				Organization: "Acme Analytics",
				StartDate:    "2019-03",
				EndDate:      "2023-06",
				Responsibilities: []string{
					"Built forecasting models serving twelve product teams",
				},
				Accomplishments: []string{
					"Reduced forecast error by 23% across 4 regions",
					"Deployed real-time anomaly detection for supply chains",
				},
				ToolsUsed: []string{"Python", "Spark"},
			},
			{
				ID:           "exp2",
				Title:        "Data Analyst",
				Organization: "Globex Research",
				StartDate:    "2016-01",
				EndDate:      "2019-02",
				Responsibilities: []string{
					"Automated weekly reporting workflows for the sales group",
				},
			},
		},
		Education: []types.EducationEntry{
			{ID: "edu1", Degree: "PhD", Field: "Statistics", Institution: "State University", YearCompleted: 2016},
		},
		Publications: []types.Publication{
			{ID: "pub1", Title: "Hierarchical Forecasting at Scale", Year: 2021},
			{ID: "pub2", Title: "Bayesian Methods for Demand Planning", Year: 2022},
		},
		Presentations: []types.Presentation{
			{ID: "pres1", Title: "Forecasting in Production", Date: "2022-05-10"},
		},
		Skills: types.SkillSet{
			Programming: map[string][]string{
				"expert":   {"Python"},
				"familiar": {"Julia", "R"},
			},
			StatisticalMethods: []string{"Bayesian inference"},
		},
	}
}

func fixtureIndex() *profile.Index {
	return profile.NewIndex(fixtureProfile())
}

func fixtureBlacklist() *config.Blacklist {
	return &config.Blacklist{
		Words:   []string{"leverage", "robust", "delve"},
		Phrases: []string{"proven track record", "fast-paced environment"},
		ContextDependent: map[string][]string{
			"robust": {"standard error", "regression"},
		},
	}
}

func newTestScorer() similarity.Scorer {
	return similarity.NewLevenshtein()
}

// initialTagger tags each whitespace token with the uppercase of its first
// rune, giving fully deterministic patterns that tests can shape at will.
type initialTagger struct{}

func (initialTagger) Tags(text string) ([]string, error) {
	var tags []string
	for _, word := range strings.Fields(text) {
		r := []rune(word)[0]
		tags = append(tags, string(unicode.ToUpper(r)))
	}
	return tags, nil
}

package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/application-verifier/internal/types"
)

func testProfile() *types.Profile {
	return &types.Profile{
		Experience: []types.ExperienceEntry{
			{
				ID:           "exp1",
				Title:        "Senior Data Scientist",
				Organization: "Acme Analytics",
				StartDate:    "2019-03",
				EndDate:      "2023-06",
				Responsibilities: []string{
					"Built forecasting models serving 12 product teams",
				},
				Accomplishments: []string{
					"Reduced forecast error by 23% across 4 regions",
				},
				ToolsUsed: []string{"Python", "Spark"},
				Keywords:  []string{"forecasting", "time series"},
			},
		},
		Education: []types.EducationEntry{
			{ID: "edu1", Degree: "PhD", Field: "Statistics", Institution: "State University", YearCompleted: 2018},
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
			ToolsAndPlatforms:  []string{"Spark"},
		},
	}
}

func TestNewIndex_ExperienceText(t *testing.T) {
	idx := NewIndex(testProfile())

	text, ok := idx.ExperienceText["exp1"]
	require.True(t, ok)
	assert.Contains(t, text, "senior data scientist")
	assert.Contains(t, text, "acme analytics")
	assert.Contains(t, text, "forecasting models")
	assert.Contains(t, text, "spark")
	// Concatenation is lowercased
	assert.NotContains(t, text, "Senior")
}

func TestNewIndex_LegitimateNumbers(t *testing.T) {
	idx := NewIndex(testProfile())

	// Numbers from string fields, verbatim
	assert.True(t, idx.LegitimateNumbers["23%"])
	assert.True(t, idx.LegitimateNumbers["12"])
	assert.True(t, idx.LegitimateNumbers["4"])
	// Numeric leaves (years) registered as integer strings
	assert.True(t, idx.LegitimateNumbers["2018"])
	assert.True(t, idx.LegitimateNumbers["2021"])
	// Absent numbers stay absent
	assert.False(t, idx.LegitimateNumbers["99"])
}

func TestNewIndex_Dates(t *testing.T) {
	idx := NewIndex(testProfile())

	assert.True(t, idx.Dates["2019"])
	assert.True(t, idx.Dates["2023"])
	// Month components from experience dates
	assert.True(t, idx.Dates["03"])
	assert.True(t, idx.Dates["06"])
	// Education and publication years
	assert.True(t, idx.Dates["2018"])
	assert.True(t, idx.Dates["2022"])
	// Presentation contributes its year only
	assert.False(t, idx.Dates["10"])
}

func TestNewIndex_SkillsFlat(t *testing.T) {
	idx := NewIndex(testProfile())

	assert.Equal(t, "expert", idx.SkillsFlat["python"])
	assert.Equal(t, "familiar", idx.SkillsFlat["julia"])
	assert.Equal(t, "familiar", idx.SkillsFlat["r"])
	assert.Equal(t, DefaultSkillLevel, idx.SkillsFlat["bayesian inference"])
	assert.Equal(t, DefaultSkillLevel, idx.SkillsFlat["spark"])
}

func TestNewIndex_TitlesOrgsAndPublications(t *testing.T) {
	idx := NewIndex(testProfile())

	assert.Equal(t, "Senior Data Scientist", idx.Titles["exp1"])
	assert.Equal(t, "Acme Analytics", idx.Orgs["exp1"])
	assert.Equal(t, "Hierarchical Forecasting at Scale", idx.PubTitles["pub1"])
}

func TestNewIndex_DerivedCounts(t *testing.T) {
	idx := NewIndex(testProfile())

	assert.Equal(t, "2", idx.DerivedCounts["num_publications"])
	assert.Equal(t, "1", idx.DerivedCounts["num_presentations"])
}

func TestNewIndex_EmptyProfile(t *testing.T) {
	idx := NewIndex(&types.Profile{})

	assert.Empty(t, idx.ExperienceText)
	assert.Empty(t, idx.LegitimateNumbers)
	assert.Empty(t, idx.Dates)
	assert.Empty(t, idx.SkillsFlat)
	assert.Equal(t, "0", idx.DerivedCounts["num_publications"])
}

func TestNewIndex_NilProfile(t *testing.T) {
	idx := NewIndex(nil)

	require.NotNil(t, idx.Profile)
	assert.Empty(t, idx.ExperienceText)
}

func TestInProfile(t *testing.T) {
	idx := NewIndex(testProfile())

	assert.True(t, idx.InProfile("23%"))
	// Derived counts participate
	assert.True(t, idx.InProfile("2"))
	assert.False(t, idx.InProfile("87"))
}

package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/application-verifier/internal/profile"
	"github.com/jonathan/application-verifier/internal/types"
)

func TestCheckSkills_ExpertClaimOnFamiliarSkill(t *testing.T) {
	c := NewSkillLevelChecker(fixtureIndex())

	issues := c.Check("Expert in Julia for high-performance computing.")
	require.Len(t, issues, 1)

	assert.Equal(t, types.IssueSkillLevelOverclaim, issues[0].Type)
	assert.Equal(t, types.SeverityHigh, issues[0].Severity)
	assert.Equal(t, "julia", issues[0].Skill)
	assert.Equal(t, "expert", issues[0].ClaimedLevel)
	assert.Equal(t, "familiar", issues[0].ProfileLevel)
}

func TestCheckSkills_ProficientClaimOnFamiliarSkillIsMedium(t *testing.T) {
	c := NewSkillLevelChecker(fixtureIndex())

	issues := c.Check("Strong Julia background from research projects.")
	require.Len(t, issues, 1)

	assert.Equal(t, types.SeverityMedium, issues[0].Severity)
	assert.Equal(t, "proficient", issues[0].ClaimedLevel)
}

func TestCheckSkills_ClaimAtDeclaredLevelNotFlagged(t *testing.T) {
	c := NewSkillLevelChecker(fixtureIndex())

	// Python is declared expert; claiming expert is fine.
	assert.Empty(t, c.Check("Expert in Python for production systems."))
	// Claiming below the declared level is also fine.
	assert.Empty(t, c.Check("Familiar with Python basics."))
}

func TestCheckSkills_BareMentionIsNotAClaim(t *testing.T) {
	c := NewSkillLevelChecker(fixtureIndex())

	assert.Empty(t, c.Check("Wrote simulation code in Julia during grad school."))
}

func TestCheckSkills_OneIssuePerSkill(t *testing.T) {
	c := NewSkillLevelChecker(fixtureIndex())

	content := "Expert in Julia for modeling. Deep expertise with Julia tooling as well."
	issues := c.Check(content)
	assert.Len(t, issues, 1)
}

func TestCheckSkills_ShortSkillNameNeedsExactBoundary(t *testing.T) {
	c := NewSkillLevelChecker(fixtureIndex())

	// "R" must not match inside "Research" (or any other word).
	assert.Empty(t, c.Check("Expert in Research methods and experimental design."))
}

func TestCheckSkills_ShortSkillNameStandaloneMatch(t *testing.T) {
	c := NewSkillLevelChecker(fixtureIndex())

	// The profile stores skills lowercased, so a standalone lowercase "r"
	// with a nearby indicator is an over-claim on the familiar-level skill.
	issues := c.Check("advanced r programming for statistical analysis")
	require.Len(t, issues, 1)
	assert.Equal(t, "r", issues[0].Skill)
	assert.Equal(t, "expert", issues[0].ClaimedLevel)
}

func TestCheckSkills_ListedSkillRanksAsProficient(t *testing.T) {
	c := NewSkillLevelChecker(fixtureIndex())

	// Bayesian inference is listed without a tier; claiming proficiency is
	// allowed, claiming expertise is a MEDIUM over-claim (gap of one rank).
	assert.Empty(t, c.Check("Experienced with Bayesian inference methods."))

	issues := c.Check("Deep expertise in Bayesian inference.")
	require.Len(t, issues, 1)
	assert.Equal(t, types.SeverityMedium, issues[0].Severity)
	assert.Equal(t, "bayesian inference", issues[0].Skill)
}

func TestCheckSkills_EmptyInputs(t *testing.T) {
	c := NewSkillLevelChecker(fixtureIndex())
	assert.Empty(t, c.Check(""))

	empty := NewSkillLevelChecker(profile.NewIndex(&types.Profile{}))
	assert.Empty(t, empty.Check("Expert in everything imaginable."))
}

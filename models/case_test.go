package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleCasesShape(t *testing.T) {
	cases := SampleCases()
	require.Len(t, cases, 8)

	seen := map[string]bool{}
	for _, c := range cases {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true

		if c.IsCompleted() {
			assert.NotNil(t, c.ResolutionDate, c.ID)
			assert.NotEmpty(t, c.OutcomeValue(), c.ID)
			assert.Nil(t, c.NextHearing, c.ID)
		} else {
			assert.Nil(t, c.ResolutionDate, c.ID)
			assert.Nil(t, c.Outcome, c.ID)
		}
	}
}

func TestSampleCasesAreCopies(t *testing.T) {
	c, ok := FindSampleCase("6u7v8w9x")
	require.True(t, ok)
	*c.Outcome = "Lost"

	again, _ := FindSampleCase("6u7v8w9x")
	assert.NotEqual(t, "Lost", again.OutcomeValue())

	_, ok = FindSampleCase("missing")
	assert.False(t, ok)
}

func TestMatchesComplexity(t *testing.T) {
	c := CaseRecord{Complexity: ComplexityHigh}
	assert.True(t, c.MatchesComplexity("high"))
	assert.True(t, c.MatchesComplexity("HIGH"))
	assert.False(t, c.MatchesComplexity("medium"))
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleLawyer, ParseRole(" Lawyer "))
	assert.Equal(t, RoleTrainee, ParseRole("trainee"))
	assert.Equal(t, RoleUser, ParseRole("judge"))
	assert.NotEmpty(t, RoleLawyer.Description())
}

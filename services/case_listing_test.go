package services

import (
	"testing"

	"aarohan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func caseNumbers(cases []models.CaseRecord) []string {
	out := make([]string, 0, len(cases))
	for _, c := range cases {
		out = append(out, c.CaseNumber)
	}
	return out
}

func TestParseCaseFilter(t *testing.T) {
	tests := []struct {
		status, complexity string
		want               CaseFilter
	}{
		{"", "", CaseFilter{models.CaseStatusPending, ComplexityAll}},
		{"completed", "HIGH", CaseFilter{models.CaseStatusCompleted, ComplexityHigh}},
		{"archived", "extreme", CaseFilter{models.CaseStatusPending, ComplexityAll}},
		{" Completed ", "low", CaseFilter{models.CaseStatusCompleted, ComplexityLow}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCaseFilter(tt.status, tt.complexity))
	}
}

func TestListCases(t *testing.T) {
	t.Run("Default shows every pending case in order", func(t *testing.T) {
		got := ListCases(DefaultCaseFilter())
		assert.Equal(t, []string{"CRL-2025-1493", "CS-2025-0426", "CRL-2025-2109", "GMC-2025-0878", "ID-2025-0433"}, caseNumbers(got))
	})

	t.Run("Complexity narrows the status set", func(t *testing.T) {
		got := ListCases(CaseFilter{Status: models.CaseStatusCompleted, Complexity: ComplexityMedium})
		assert.Equal(t, []string{"HMA-2024-1889", "WP-2024-0876"}, caseNumbers(got))
	})

	t.Run("No match is empty, not nil", func(t *testing.T) {
		got := ListCases(CaseFilter{Status: models.CaseStatusCompleted, Complexity: ComplexityLow})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Results do not alias the sample set", func(t *testing.T) {
		got := ListCases(DefaultCaseFilter())
		got[0].Title = "changed"
		again := ListCases(DefaultCaseFilter())
		assert.Equal(t, "Sharma v. Delhi Metro Rail Corporation", again[0].Title)
	})
}

func TestJoinableCase(t *testing.T) {
	c, err := JoinableCase("3i4j5k6l")
	require.NoError(t, err)
	assert.Equal(t, "CRL-2025-2109", c.CaseNumber)
	assert.NotNil(t, c.NextHearing)

	_, err = JoinableCase("6u7v8w9x")
	assert.ErrorIs(t, err, ErrCaseNotJoinable)

	_, err = JoinableCase("missing")
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

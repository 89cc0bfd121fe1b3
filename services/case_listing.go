package services

import (
	"errors"
	"strings"

	"aarohan/models"
)

// ComplexityFilter narrows the case list by complexity; "all" keeps everything
type ComplexityFilter string

const (
	ComplexityAll    ComplexityFilter = "all"
	ComplexityLow    ComplexityFilter = "low"
	ComplexityMedium ComplexityFilter = "medium"
	ComplexityHigh   ComplexityFilter = "high"
)

// ComplexityFilters lists the filter buttons in display order
var ComplexityFilters = []ComplexityFilter{ComplexityAll, ComplexityLow, ComplexityMedium, ComplexityHigh}

var (
	ErrCaseNotFound    = errors.New("case not found")
	ErrCaseNotJoinable = errors.New("hearings can only be joined for pending cases")
)

// CaseFilter is the pair of filters applied to the case list
type CaseFilter struct {
	Status     models.CaseStatus
	Complexity ComplexityFilter
}

// DefaultCaseFilter shows every pending case
func DefaultCaseFilter() CaseFilter {
	return CaseFilter{Status: models.CaseStatusPending, Complexity: ComplexityAll}
}

// ParseCaseFilter reads query values, falling back to the defaults for anything unknown
func ParseCaseFilter(status, complexity string) CaseFilter {
	f := DefaultCaseFilter()

	if models.CaseStatus(strings.ToLower(strings.TrimSpace(status))) == models.CaseStatusCompleted {
		f.Status = models.CaseStatusCompleted
	}

	switch c := ComplexityFilter(strings.ToLower(strings.TrimSpace(complexity))); c {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
		f.Complexity = c
	}

	return f
}

// FilterCases returns the subsequence of cases matching both filters, order preserved
func FilterCases(cases []models.CaseRecord, f CaseFilter) []models.CaseRecord {
	out := make([]models.CaseRecord, 0, len(cases))
	for _, c := range cases {
		if c.Status != f.Status {
			continue
		}
		if f.Complexity != ComplexityAll && !c.MatchesComplexity(string(f.Complexity)) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ListCases filters the fixed sample set
func ListCases(f CaseFilter) []models.CaseRecord {
	return FilterCases(models.SampleCases(), f)
}

// JoinableCase returns the full record of a pending case so it can be handed to the courtroom
func JoinableCase(id string) (models.CaseRecord, error) {
	c, ok := models.FindSampleCase(id)
	if !ok {
		return models.CaseRecord{}, ErrCaseNotFound
	}
	if !c.IsPending() {
		return models.CaseRecord{}, ErrCaseNotJoinable
	}
	return c, nil
}

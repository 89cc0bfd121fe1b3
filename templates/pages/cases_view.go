package pages

import (
	"net/url"

	"aarohan/models"
	"aarohan/services"
)

// CasesView is the state of the case listing
type CasesView struct {
	Filter services.CaseFilter
	Cases  []models.CaseRecord
}

func filterURL(path string, f services.CaseFilter) string {
	q := url.Values{}
	q.Set("status", string(f.Status))
	q.Set("complexity", string(f.Complexity))
	return path + "?" + q.Encode()
}

func statusHeading(status models.CaseStatus) string {
	if status == models.CaseStatusCompleted {
		return "Disposed Matters"
	}
	return "Pending Matters"
}

func badgeClass(c models.CaseRecord) string {
	switch {
	case c.IsCompleted() && c.OutcomeValue() == models.OutcomeWon:
		return "badge-won"
	case c.IsCompleted() && c.OutcomeValue() == models.OutcomeSettled:
		return "badge-settled"
	case c.Complexity == models.ComplexityHigh:
		return "badge-high"
	case c.Complexity == models.ComplexityMedium:
		return "badge-medium"
	default:
		return "badge-low"
	}
}

func joinURL(c models.CaseRecord) string {
	return "/cases/" + url.PathEscape(c.ID) + "/join"
}

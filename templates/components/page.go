package components

import (
	"aarohan/models"
	"aarohan/services/visitor"
)

// Page carries what every rendered page needs besides its body
type Page struct {
	SEO     *models.SEO
	CSRF    string
	Flashes []visitor.Flash
	Session *models.Session
	Scripts []string
	// Bare hides the site navbar
	Bare bool
}

// Meta is the page's SEO, falling back to the site defaults
func (p Page) Meta() *models.SEO {
	if p.SEO == nil {
		return models.DefaultSEO("AAROHAN", "")
	}
	return p.SEO
}

type navLink struct {
	Label string
	Href  string
}

var navLinks = []navLink{
	{"Home", "/"},
	{"About", "/#about"},
	{"Features", "/#features"},
	{"Team", "/#team"},
}

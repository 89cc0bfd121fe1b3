package handlers

import "aarohan/models"

const defaultOGImage = "/static/img/logo.svg"

// SEO configurations per page; canonical URLs are resolved against APP_URL at render time
var pageSEO = map[string]*models.SEO{
	"landing": {
		Title:       "AAROHAN - AI-Powered Judiciary System",
		Description: "AAROHAN uses AI to reduce case backlogs, match lawyers with pending matters and run virtual hearings, making justice more accessible, efficient and equitable.",
		Keywords:    "AI judiciary, legal technology, virtual courtroom, case management, India",
		Canonical:   "/",
		OGImage:     defaultOGImage,
		OGType:      "website",
	},
	"auth": {
		Title:       "Sign In | AAROHAN",
		Description: "Sign in or create an AAROHAN account as a lawyer, trainee or user.",
		Canonical:   "/auth",
		OGType:      "website",
	},
	"cases": {
		Title:       "Pending Matters | AAROHAN",
		Description: "Browse pending and disposed matters and join virtual hearings.",
		Canonical:   "/pending-cases",
		OGType:      "website",
	},
	"enter-case": {
		Title:       "Enter New Case | AAROHAN",
		Description: "Register a new case with AAROHAN.",
		Canonical:   "/enter-case",
		OGType:      "website",
	},
	"courtroom": {
		Title:   "Virtual Courtroom | AAROHAN",
		OGType:  "website",
		NoIndex: true,
	},
}

// GetSEO returns a copy of the page's SEO settings with the canonical URL made absolute
func GetSEO(page, appURL string) *models.SEO {
	seo, ok := pageSEO[page]
	if !ok {
		return models.DefaultSEO("AAROHAN", "")
	}
	// Return a copy to avoid mutations
	copy := *seo
	if copy.Canonical != "" {
		copy.Canonical = appURL + copy.Canonical
	}
	if copy.OGImage != "" {
		copy.OGImage = appURL + copy.OGImage
	}
	return &copy
}

package handlers

import (
	"aarohan/templates/pages"

	"github.com/labstack/echo/v4"
)

// LandingHandler renders the marketing home page
func LandingHandler(c echo.Context) error {
	return render(c, pages.Landing(pageFor(c, "landing")))
}

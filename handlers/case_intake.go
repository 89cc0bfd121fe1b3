package handlers

import (
	"errors"
	"net/http"

	"aarohan/models"
	"aarohan/services"
	"aarohan/templates/pages"

	"github.com/labstack/echo/v4"
)

// EnterCaseHandler renders the new case form
func EnterCaseHandler(c echo.Context) error {
	return render(c, pages.EnterCase(pageFor(c, "enter-case"), models.NewCaseIntakeForm()))
}

// EnterCasePostHandler validates a new case and pretends to file it
func EnterCasePostHandler(c echo.Context) error {
	v, err := requireVisitor(c)
	if err != nil {
		return err
	}

	var form models.CaseIntakeForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}

	form, err = services.SubmitCaseIntake(form)
	if err != nil {
		var verr *services.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		for _, msg := range verr.Messages() {
			v.Error(msg)
		}
		return renderStatus(c, http.StatusUnprocessableEntity, pages.EnterCase(pageFor(c, "enter-case"), form))
	}

	v.Success(services.CaseIntakeCreatedMessage)
	return c.Redirect(http.StatusSeeOther, services.RouteCaseListing)
}

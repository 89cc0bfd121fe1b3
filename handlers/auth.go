package handlers

import (
	"errors"
	"net/http"
	"strings"

	"aarohan/db"
	"aarohan/logging"
	"aarohan/middleware"
	"aarohan/models"
	"aarohan/services"
	"aarohan/templates/pages"

	"github.com/labstack/echo/v4"
)

// AuthService submits auth forms to the identity provider; it is set at startup
var AuthService *services.AuthFlow

// AuthPageHandler renders the sign in / sign up screen
func AuthPageHandler(c echo.Context) error {
	mode := services.ParseAuthMode(c.QueryParam("mode"))
	view := pages.AuthView{
		Mode: mode,
		Form: services.AuthForm{Mode: mode, Role: models.ParseRole(c.QueryParam("role"))},
	}
	return render(c, pages.Auth(pageFor(c, "auth"), view))
}

func bindAuthForm(c echo.Context) services.AuthForm {
	return services.AuthForm{
		Mode:      services.ParseAuthMode(c.FormValue("mode")),
		Role:      models.ParseRole(c.FormValue("role")),
		Name:      strings.TrimSpace(c.FormValue("name")),
		Phone:     strings.TrimSpace(c.FormValue("phone")),
		Aadhar:    strings.TrimSpace(c.FormValue("aadhar")),
		Email:     strings.TrimSpace(c.FormValue("email")),
		Password:  c.FormValue("password"),
		BarNumber: strings.TrimSpace(c.FormValue("bar_number")),
	}
}

// AuthPostHandler validates the form and signs the visitor up or in
func AuthPostHandler(c echo.Context) error {
	v, err := requireVisitor(c)
	if err != nil {
		return err
	}

	form := bindAuthForm(c)
	rerender := func(status int) error {
		form.Password = ""
		return renderStatus(c, status, pages.Auth(pageFor(c, "auth"), pages.AuthView{Mode: form.Mode, Form: form}))
	}

	if AuthService == nil {
		v.Error(services.GenericFailureMessage)
		return rerender(http.StatusServiceUnavailable)
	}

	outcome, err := AuthService.Submit(c.Request().Context(), form)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			for _, msg := range verr.Messages() {
				v.Error(msg)
			}
			return rerender(http.StatusUnprocessableEntity)
		}
		v.Error(services.GenericFailureMessage)
		return rerender(http.StatusOK)
	}

	if outcome.User != nil {
		session, err := services.CreateSession(db.DB, outcome.User, c.RealIP(), c.Request().UserAgent())
		if err != nil {
			logging.L().Errorw("Failed to create session", "error", err)
			v.Error(services.GenericFailureMessage)
			return rerender(http.StatusOK)
		}
		middleware.SetSessionCookie(c, session)
	}

	v.Success(outcome.Notice)
	if outcome.Destination != "" {
		return c.Redirect(http.StatusSeeOther, outcome.Destination)
	}
	return c.Redirect(http.StatusSeeOther, "/auth?mode="+string(outcome.Mode))
}

// LogoutHandler ends the web session
func LogoutHandler(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := services.DeleteSession(db.DB, cookie.Value); err != nil {
			logging.L().Errorw("Failed to delete session", "error", err)
		}
	}
	middleware.ClearSessionCookie(c)

	if v := middleware.GetVisitor(c); v != nil {
		v.CloseCourtroom()
		v.Success("Signed out.")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

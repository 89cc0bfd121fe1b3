package handlers

import (
	"net/http"

	"aarohan/config"
	"aarohan/middleware"
	"aarohan/services/visitor"
	"aarohan/templates/components"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

func render(c echo.Context, component templ.Component) error {
	return renderStatus(c, http.StatusOK, component)
}

func renderStatus(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

func getConfig(c echo.Context) *config.Config {
	if cfg, ok := c.Get("config").(*config.Config); ok {
		return cfg
	}
	return &config.Config{}
}

// pageFor collects the per-request layout data and drains the visitor's notifications
func pageFor(c echo.Context, seoKey string) components.Page {
	page := components.Page{
		SEO:     GetSEO(seoKey, getConfig(c).AppURL),
		CSRF:    middleware.GetCSRFToken(c),
		Session: middleware.GetCurrentSession(c),
	}
	if v := middleware.GetVisitor(c); v != nil {
		page.Flashes = v.TakeFlashes()
	}
	return page
}

// requireVisitor returns the request's state container; its absence is a wiring error
func requireVisitor(c echo.Context) (*visitor.Visitor, error) {
	v := middleware.GetVisitor(c)
	if v == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Visitor state unavailable")
	}
	return v, nil
}

// redirectWith queues a notification and redirects with 303
func redirectWith(c echo.Context, v *visitor.Visitor, level visitor.FlashLevel, message, to string) error {
	v.AddFlash(level, message)
	return c.Redirect(http.StatusSeeOther, to)
}

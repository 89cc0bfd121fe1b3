package middleware

import (
	"net/http"

	"aarohan/services/visitor"

	"github.com/labstack/echo/v4"
)

const (
	// VisitorCookieName identifies the browser's state container
	VisitorCookieName = "aarohan_visitor"
	// ContextKeyVisitor is the context key for the visitor
	ContextKeyVisitor = "visitor"
)

// Visitor resolves the browser's state container from its cookie, creating one on first sight
func Visitor(store *visitor.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id string
			if cookie, err := c.Cookie(VisitorCookieName); err == nil {
				id = cookie.Value
			}

			v, created := store.GetOrCreate(id)
			if created {
				c.SetCookie(&http.Cookie{
					Name:     VisitorCookieName,
					Value:    v.ID,
					Path:     "/",
					HttpOnly: true,
					Secure:   secureCookies(c),
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(ContextKeyVisitor, v)
			return next(c)
		}
	}
}

// GetVisitor retrieves the visitor from context
func GetVisitor(c echo.Context) *visitor.Visitor {
	v, ok := c.Get(ContextKeyVisitor).(*visitor.Visitor)
	if !ok {
		return nil
	}
	return v
}

package middleware

import (
	"errors"
	"net/http"

	"aarohan/config"
	"aarohan/db"
	"aarohan/logging"
	"aarohan/models"
	"aarohan/services"

	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName is the name of the session cookie
	SessionCookieName = "aarohan_session"
	// ContextKeySession is the context key for the signed-in session
	ContextKeySession = "session"
)

// LoadSession attaches the signed-in session to the context when the cookie is valid.
// Anonymous requests pass through; every page of the app is reachable without signing in.
func LoadSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			session, err := services.ValidateSession(db.DB, cookie.Value)
			if err != nil {
				// Only a session that is gone loses its cookie; a store failure keeps it for the next request
				if errors.Is(err, services.ErrSessionNotFound) || errors.Is(err, services.ErrSessionExpired) {
					ClearSessionCookie(c)
				} else {
					logging.L().Errorw("Session lookup failed", "error", err)
				}
				return next(c)
			}

			c.Set(ContextKeySession, session)
			return next(c)
		}
	}
}

// GetCurrentSession retrieves the signed-in session from context
func GetCurrentSession(c echo.Context) *models.Session {
	session, ok := c.Get(ContextKeySession).(*models.Session)
	if !ok {
		return nil
	}
	return session
}

// SetSessionCookie stores the session token in the browser
func SetSessionCookie(c echo.Context, session *models.Session) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(services.DefaultSessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   secureCookies(c),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie clears the session cookie
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secureCookies(c),
		SameSite: http.SameSiteLaxMode,
	})
}

func secureCookies(c echo.Context) bool {
	if cfg, ok := c.Get("config").(*config.Config); ok {
		return cfg.SecureCookies
	}
	return false
}

package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"aarohan/logging"

	"github.com/labstack/echo/v4"
)

type contextKey string

const NonceKey contextKey = "csp_nonce"

// GenerateNonce creates a random nonce string
func GenerateNonce() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// CSPNonce generates a nonce per request, exposes it to handlers and templates,
// and sets the security headers of the page
func CSPNonce() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				logging.L().Errorf("Failed to generate nonce: %v", err)
				nonce = "fallback-nonce-value"
			}

			c.Set(string(NonceKey), nonce)

			ctx := context.WithValue(c.Request().Context(), NonceKey, nonce)
			c.SetRequest(c.Request().WithContext(ctx))

			// media-src blob: is needed for the local camera preview
			csp := fmt.Sprintf("default-src 'self'; script-src 'self' 'nonce-%s'; style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; img-src 'self' data: blob:; media-src 'self' blob: mediastream:; font-src 'self' https://fonts.gstatic.com; connect-src 'self'; frame-ancestors 'none'", nonce)

			h := c.Response().Header()
			h.Set("Content-Security-Policy", csp)
			h.Set("Permissions-Policy", "camera=(self), microphone=(self)")
			h.Set("Referrer-Policy", "same-origin")

			return next(c)
		}
	}
}

// GetNonce retrieves the nonce from the context
func GetNonce(ctx context.Context) string {
	if val, ok := ctx.Value(NonceKey).(string); ok {
		return val
	}
	return ""
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"aarohan/services/visitor"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitorMiddleware(t *testing.T) {
	e := echo.New()
	store := visitor.NewStore()

	var seen *visitor.Visitor
	handler := Visitor(store)(func(c echo.Context) error {
		seen = GetVisitor(c)
		return c.NoContent(http.StatusOK)
	})

	t.Run("NewBrowser", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler(c))
		require.NotNil(t, seen)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), VisitorCookieName+"="+seen.ID)
	})

	t.Run("ReturningBrowser", func(t *testing.T) {
		first := seen

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: VisitorCookieName, Value: first.ID})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler(c))
		assert.Same(t, first, seen)
		assert.Empty(t, rec.Header().Get("Set-Cookie"))
		assert.Equal(t, 1, store.Len())
	})

	t.Run("StaleCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: VisitorCookieName, Value: "forgotten"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler(c))
		assert.NotEqual(t, "forgotten", seen.ID)
		assert.Equal(t, 2, store.Len())
	})
}

func TestGetVisitorMissing(t *testing.T) {
	c := echo.New().NewContext(nil, nil)
	assert.Nil(t, GetVisitor(c))
}

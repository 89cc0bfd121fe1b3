package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aarohan/services/visitor"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Requests: 10,
		Window:   time.Minute,
	})

	assert.NotNil(t, rl)
	assert.Equal(t, 10, rl.config.Requests)
	assert.Equal(t, time.Minute, rl.config.Window)
	assert.NotNil(t, rl.config.KeyFunc)
	assert.Equal(t, "Too many requests. Please try again later.", rl.config.Message)
}

func TestRateLimiterMiddleware(t *testing.T) {
	e := echo.New()

	t.Run("WithinLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{
			Requests: 2,
			Window:   time.Second,
		})

		handler := rl.Middleware()(func(c echo.Context) error {
			return c.String(http.StatusOK, "success")
		})

		// First request
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		assert.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		// Second request
		req = httptest.NewRequest(http.MethodGet, "/", nil)
		rec = httptest.NewRecorder()
		c = e.NewContext(req, rec)
		assert.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ExceededLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{
			Requests: 1,
			Window:   time.Second,
		})

		handler := rl.Middleware()(func(c echo.Context) error {
			return c.String(http.StatusOK, "success")
		})

		// First request (OK)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		assert.NoError(t, handler(c))

		// Second request (Rate Limited)
		req = httptest.NewRequest(http.MethodGet, "/", nil)
		rec = httptest.NewRecorder()
		c = e.NewContext(req, rec)
		err := handler(c)

		assert.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusTooManyRequests, he.Code)
	})

	t.Run("VisitorExceeded", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{
			Requests: 1,
			Window:   time.Second,
		})

		handler := rl.Middleware()(func(c echo.Context) error {
			return c.String(http.StatusOK, "success")
		})
		v := visitor.NewStore().Create()

		req := httptest.NewRequest(http.MethodPost, "/auth", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(ContextKeyVisitor, v)
		assert.NoError(t, handler(c))

		req = httptest.NewRequest(http.MethodPost, "/auth", nil)
		rec = httptest.NewRecorder()
		c = e.NewContext(req, rec)
		c.Set(ContextKeyVisitor, v)

		err := handler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/auth", rec.Header().Get(echo.HeaderLocation))

		flashes := v.TakeFlashes()
		if assert.Len(t, flashes, 1) {
			assert.Equal(t, "Too many requests. Please try again later.", flashes[0].Message)
		}
	})
	t.Run("VisitorExceededOnUpload", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{
			Requests: 1,
			Window:   time.Second,
			Redirect: CourtroomUploadRateLimiter.config.Redirect,
		})

		handler := rl.Middleware()(func(c echo.Context) error {
			return c.String(http.StatusOK, "uploaded")
		})
		v := visitor.NewStore().Create()

		upload := func() (*httptest.ResponseRecorder, error) {
			req := httptest.NewRequest(http.MethodPost, "/courtroom/1a2b3c4d/documents", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath("/courtroom/:caseId/documents")
			c.SetParamNames("caseId")
			c.SetParamValues("1a2b3c4d")
			c.Set(ContextKeyVisitor, v)
			return rec, handler(c)
		}

		_, err := upload()
		assert.NoError(t, err)

		rec, err := upload()
		assert.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/courtroom/1a2b3c4d", rec.Header().Get(echo.HeaderLocation))
		assert.Len(t, v.TakeFlashes(), 1)
	})
}

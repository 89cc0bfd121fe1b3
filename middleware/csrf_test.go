package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"aarohan/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCSRFToken(t *testing.T) {
	e := echo.New()

	t.Run("TokenExists", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		c.Set(ContextKeyCSRF, "test-csrf-token")
		assert.Equal(t, "test-csrf-token", GetCSRFToken(c))
	})

	t.Run("TokenMissing", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		assert.Equal(t, "", GetCSRFToken(c))
	})

	t.Run("TokenInvalidType", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		c.Set(ContextKeyCSRF, 123)
		assert.Equal(t, "", GetCSRFToken(c))
	})
}

// courtroomCSRFServer serves a hearing page and its chat form behind the CSRF guard
func courtroomCSRFServer() *echo.Echo {
	e := echo.New()
	e.Use(CSRF(&config.Config{}))
	e.GET("/courtroom/:caseId", func(c echo.Context) error {
		return c.String(http.StatusOK, GetCSRFToken(c))
	})
	e.POST("/courtroom/:caseId/messages", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/courtroom/"+c.Param("caseId")+"#messages")
	})
	return e
}

func postMessage(e *echo.Echo, form url.Values, cookie *http.Cookie, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/courtroom/1a2b3c4d/messages", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCSRFOnCourtroomForms(t *testing.T) {
	e := courtroomCSRFServer()

	req := httptest.NewRequest(http.MethodGet, "/courtroom/1a2b3c4d", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	token := rec.Body.String()
	require.NotEmpty(t, token)
	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == CSRFCookieName {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, token, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	t.Run("Form with the page token is accepted", func(t *testing.T) {
		rec := postMessage(e, url.Values{"content": {"Objection"}, CSRFFormField: {token}}, cookie, nil)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/courtroom/1a2b3c4d#messages", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("Script header is accepted", func(t *testing.T) {
		rec := postMessage(e, url.Values{"content": {"Objection"}}, cookie, http.Header{CSRFHeader: {token}})
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("Form without a token is rejected", func(t *testing.T) {
		rec := postMessage(e, url.Values{"content": {"Objection"}}, cookie, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Form with a foreign token is rejected", func(t *testing.T) {
		rec := postMessage(e, url.Values{"content": {"Objection"}, CSRFFormField: {"forged"}}, cookie, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Cross-site post is blocked", func(t *testing.T) {
		rec := postMessage(e, url.Values{"content": {"Objection"}, CSRFFormField: {token}}, cookie, http.Header{echo.HeaderSecFetchSite: {"cross-site"}})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

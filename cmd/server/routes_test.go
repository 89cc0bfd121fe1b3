package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"aarohan/handlers"
	"aarohan/middleware"
	"aarohan/services/visitor"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBareCourtroomPathRedirectsToCaseListing(t *testing.T) {
	store := visitor.NewStore()
	e := echo.New()
	e.Use(middleware.Visitor(store))
	registerRoutes(e)

	for _, path := range []string{"/courtroom", "/courtroom/"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/pending-cases", rec.Header().Get(echo.HeaderLocation))

			var visitorID string
			for _, cookie := range rec.Result().Cookies() {
				if cookie.Name == middleware.VisitorCookieName {
					visitorID = cookie.Value
				}
			}
			require.NotEmpty(t, visitorID)
			v, created := store.GetOrCreate(visitorID)
			require.False(t, created)
			flashes := v.TakeFlashes()
			if assert.Len(t, flashes, 1) {
				assert.Equal(t, handlers.NoCaseDetailsMessage, flashes[0].Message)
			}
		})
	}
}

func TestCourtroomRoutesAcceptTheirMethods(t *testing.T) {
	e := echo.New()
	registerRoutes(e)

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /courtroom",
		"GET /courtroom/",
		"GET /courtroom/:caseId",
		"POST /courtroom/:caseId/messages",
		"POST /courtroom/:caseId/documents",
		"GET /courtroom/:caseId/documents/:docID",
		"POST /courtroom/:caseId/leave",
	} {
		assert.True(t, registered[want], want)
	}
}

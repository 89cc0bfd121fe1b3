package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLandingHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/", nil)
	v := withVisitor(c)
	v.Success("Signed out.")

	assert.NoError(t, LandingHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `<link rel="canonical" href="https://aarohan.test/">`)
	assert.Contains(t, body, `href="/auth">Get Started</a>`)
	assert.Contains(t, body, "Signed out.")
	assert.Empty(t, v.TakeFlashes(), "notifications are shown once")
}

func TestGetSEO(t *testing.T) {
	seo := GetSEO("cases", "https://aarohan.test")
	assert.Equal(t, "https://aarohan.test/pending-cases", seo.Canonical)
	assert.Equal(t, "/pending-cases", pageSEO["cases"].Canonical, "the shared entry is not modified")

	assert.True(t, GetSEO("courtroom", "https://aarohan.test").NoIndex)
	assert.NotNil(t, GetSEO("missing", ""))
}

func TestGetSitemapHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/sitemap.xml", nil)

	assert.NoError(t, GetSitemapHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<loc>https://aarohan.test/pending-cases</loc>")
	assert.NotContains(t, body, "courtroom")
}

func TestGetRobotsHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/robots.txt", nil)

	assert.NoError(t, GetRobotsHandler(c))
	assert.Contains(t, rec.Body.String(), "Disallow: /courtroom/")
	assert.Contains(t, rec.Body.String(), "Sitemap: https://aarohan.test/sitemap.xml")
}

package pages

import (
	"bytes"
	"context"
	"testing"
	"time"

	"aarohan/middleware"
	"aarohan/models"
	"aarohan/services"
	"aarohan/services/courtroom"
	"aarohan/services/visitor"
	"aarohan/templates/components"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func TestLandingFooterYear(t *testing.T) {
	out := renderString(t, WithYear(context.Background(), 2025), Landing(components.Page{}))
	assert.Contains(t, out, "&copy; 2025 AAROHAN")
	for _, m := range Team {
		assert.Contains(t, out, m.Name)
	}
}

func TestAuthPage(t *testing.T) {
	t.Run("Sign up shows the bar number only as a lawyer field", func(t *testing.T) {
		out := renderString(t, context.Background(), Auth(components.Page{CSRF: "tok"}, AuthView{
			Mode: services.AuthModeSignUp,
			Form: services.AuthForm{Role: models.RoleLawyer, Name: `"Meera"`},
		}))
		assert.Contains(t, out, `class="field bar-field"`)
		assert.Contains(t, out, `value="&#34;Meera&#34;"`)
		assert.Contains(t, out, `name="_csrf" value="tok"`)
	})

	t.Run("Password is never echoed back", func(t *testing.T) {
		out := renderString(t, context.Background(), Auth(components.Page{}, AuthView{
			Mode: services.AuthModeSignIn,
			Form: services.AuthForm{Email: "a@b.co", Password: "supersecret"},
		}))
		assert.NotContains(t, out, "supersecret")
		assert.NotContains(t, out, `name="name"`)
		assert.Contains(t, out, `<div class="field"><label for="email">`)
		assert.Contains(t, out, `<a class="tab active" href="/auth?mode=signin">`)
	})
}

func TestCasesPageFlashes(t *testing.T) {
	page := components.Page{Flashes: []visitor.Flash{{Level: visitor.FlashError, Message: "<b>Case not found.</b>"}}}
	out := renderString(t, context.Background(), Cases(page, CasesView{
		Filter: services.DefaultCaseFilter(),
		Cases:  services.ListCases(services.DefaultCaseFilter()),
	}))
	assert.Contains(t, out, "&lt;b&gt;Case not found.&lt;/b&gt;")
	assert.Contains(t, out, "/cases/1a2b3c4d/join")
}

func TestCourtroomPage(t *testing.T) {
	record, ok := models.FindSampleCase("1a2b3c4d")
	require.True(t, ok)
	s := courtroom.NewSession(record, courtroom.DefaultCounsel)
	s.SendMessage("</script><script>alert(1)</script>")
	s.ToggleCamera()

	out := renderString(t, context.Background(), Courtroom(components.Page{}, NewCourtroomView(s, time.Now())))
	assert.Contains(t, out, "Camera off")
	assert.Contains(t, out, "Mic on")
	assert.Contains(t, out, `"captureState":"pending"`)
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.NotContains(t, out, "/participants/"+courtroom.DefaultCounsel.ID+"/remove", "the current user cannot be removed")
	assert.Contains(t, out, "/participants/judge-1/remove")
	assert.Contains(t, out, `class="message message-judge"`)
}

func TestCourtroomConfigCarriesNonce(t *testing.T) {
	record, ok := models.FindSampleCase("1a2b3c4d")
	require.True(t, ok)
	s := courtroom.NewSession(record, courtroom.DefaultCounsel)

	ctx := context.WithValue(context.Background(), middleware.NonceKey, "n0nce")
	out := renderString(t, ctx, Courtroom(components.Page{CSRF: "tok"}, NewCourtroomView(s, time.Now())))
	assert.Contains(t, out, `<script id="courtroom-config" type="application/json" nonce="n0nce">`)
	assert.Contains(t, out, `"captureUrl":"/courtroom/1a2b3c4d/capture"`)
	assert.Contains(t, out, `"csrf":"tok"`)
}

func TestEnterCaseKeepsTypedValues(t *testing.T) {
	out := renderString(t, context.Background(), EnterCase(components.Page{}, models.CaseIntakeForm{
		Title:       "Mehra v. Union",
		Description: "Land <acquisition> dispute",
		Priority:    "high",
	}))
	assert.Contains(t, out, `value="Mehra v. Union"`)
	assert.Contains(t, out, "Land &lt;acquisition&gt; dispute</textarea>")
	assert.Contains(t, out, `value="high" selected`)
	assert.Contains(t, out, `<option value="">Select case type</option>`)
}

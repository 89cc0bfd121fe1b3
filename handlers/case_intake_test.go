package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"aarohan/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func validIntake() url.Values {
	f := url.Values{}
	f.Set("title", "Mehra v. State Bank of India")
	f.Set("case_type", "civil")
	f.Set("description", "Recovery of wrongly debited charges.")
	f.Set("court", "Delhi High Court")
	f.Set("judge", "Hon. Justice Rao")
	f.Set("next_hearing_date", "2025-06-12")
	f.Set("status", "pending")
	f.Set("priority", "high")
	f.Set("client_name", "Kavita Mehra")
	f.Set("client_contact", "kavita@example.com")
	return f
}

func TestEnterCaseHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/enter-case", nil)
	withVisitor(c)

	assert.NoError(t, EnterCaseHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `name="title"`)
	assert.Contains(t, body, `value="medium" selected`)
}

func TestEnterCasePostHandler(t *testing.T) {
	t.Run("Valid submission is acknowledged", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/enter-case", strings.NewReader(validIntake().Encode()))
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		v := withVisitor(c)

		assert.NoError(t, EnterCasePostHandler(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/pending-cases", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, []string{services.CaseIntakeCreatedMessage}, flashMessages(v))
	})

	t.Run("Invalid submission keeps the values", func(t *testing.T) {
		f := validIntake()
		f.Set("title", "")
		f.Set("case_type", "maritime")
		_, c, rec := setupEcho(http.MethodPost, "/enter-case", strings.NewReader(f.Encode()))
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		withVisitor(c)

		assert.NoError(t, EnterCasePostHandler(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Case title is required")
		assert.Contains(t, body, "Select a valid case type")
		assert.Contains(t, body, "Kavita Mehra")
	})
}

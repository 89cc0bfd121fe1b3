package handlers

import (
	"bytes"
	"net/http"
	"testing"

	"aarohan/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestPendingCasesHandler(t *testing.T) {
	t.Run("Defaults to pending cases", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/pending-cases", nil)
		withVisitor(c)

		assert.NoError(t, PendingCasesHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Pending Matters")
		assert.Contains(t, body, "Sharma v. Delhi Metro Rail Corporation")
		assert.Contains(t, body, "State v. Malhotra")
		assert.NotContains(t, body, "Reddy Medical Negligence")
		assert.Contains(t, body, "Join Hearing")
	})

	t.Run("Both filters apply", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/pending-cases?status=pending&complexity=high", nil)
		withVisitor(c)

		assert.NoError(t, PendingCasesHandler(c))
		body := rec.Body.String()
		assert.Contains(t, body, "State v. Malhotra")
		assert.Contains(t, body, "Kumar v. Tech Solutions Pvt Ltd")
		assert.NotContains(t, body, "Verma Property Encroachment Dispute")
	})

	t.Run("Completed cases", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/pending-cases?status=completed", nil)
		withVisitor(c)

		assert.NoError(t, PendingCasesHandler(c))
		body := rec.Body.String()
		assert.Contains(t, body, "Disposed Matters")
		assert.Contains(t, body, "Khanna Divorce Proceedings")
		assert.NotContains(t, body, "Join Hearing")
	})

	t.Run("Empty result", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/pending-cases?status=completed&complexity=low", nil)
		withVisitor(c)

		assert.NoError(t, PendingCasesHandler(c))
		assert.Contains(t, rec.Body.String(), "No completed matters found matching your criteria.")
	})
}

func TestExportCasesHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/pending-cases/export?complexity=high", nil)

	assert.NoError(t, ExportCasesHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "aarohan-pending-matters.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(services.CaseExportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Case Number", rows[0][0])
	assert.Equal(t, "CRL-2025-2109", rows[1][0])
	assert.Equal(t, "ID-2025-0433", rows[2][0])
}

func TestJoinHearingHandler(t *testing.T) {
	t.Run("Pending case hands over the record", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/cases/1a2b3c4d/join", nil)
		c.SetParamNames("id")
		c.SetParamValues("1a2b3c4d")
		v := withVisitor(c)

		assert.NoError(t, JoinHearingHandler(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/courtroom/1a2b3c4d", rec.Header().Get(echo.HeaderLocation))

		record, ok := v.TakeNavigationCase("1a2b3c4d")
		require.True(t, ok)
		assert.Equal(t, "CRL-2025-1493", record.CaseNumber)
	})

	tests := map[string]struct {
		id      string
		message string
	}{
		"Completed case": {"6u7v8w9x", "Hearings can only be joined for pending cases."},
		"Unknown case":   {"nope", "Case not found."},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, c, rec := setupEcho(http.MethodPost, "/cases/"+tt.id+"/join", nil)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)
			v := withVisitor(c)

			assert.NoError(t, JoinHearingHandler(c))
			assert.Equal(t, "/pending-cases", rec.Header().Get(echo.HeaderLocation))
			assert.Equal(t, []string{tt.message}, flashMessages(v))
			_, ok := v.TakeNavigationCase(tt.id)
			assert.False(t, ok)
		})
	}
}

package services

import (
	"testing"

	"aarohan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIntakeForm() models.CaseIntakeForm {
	return models.CaseIntakeForm{
		Title:           "Mehra v. State Bank of India",
		CaseType:        "civil",
		Description:     "Recovery of wrongly debited charges.",
		Court:           "Delhi High Court",
		Judge:           "Hon. Justice Rao",
		NextHearingDate: "2025-06-12",
		Status:          "pending",
		Priority:        "high",
		ClientName:      "Kavita Mehra",
		ClientContact:   "kavita@example.com",
	}
}

func TestSubmitCaseIntake(t *testing.T) {
	t.Run("Valid form", func(t *testing.T) {
		before := len(models.SampleCases())
		_, err := SubmitCaseIntake(validIntakeForm())
		assert.NoError(t, err)
		assert.Len(t, models.SampleCases(), before, "nothing is filed")
	})

	t.Run("Markup is stripped before validation", func(t *testing.T) {
		form := validIntakeForm()
		form.Title = "<script>alert(1)</script>"
		form.ClientName = "<b>Kavita</b> Mehra"

		got, err := SubmitCaseIntake(form)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"Case title is required"}, verr.Messages())
		assert.Equal(t, "Kavita Mehra", got.ClientName)
	})

	t.Run("Enumerations and dates are checked", func(t *testing.T) {
		form := validIntakeForm()
		form.CaseType = "maritime"
		form.NextHearingDate = "12/06/2025"
		form.Priority = ""

		_, err := SubmitCaseIntake(form)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{
			"Select a valid case type",
			"Next hearing date must be a valid date",
			"Select a valid priority level",
		}, verr.Messages())
	})
}

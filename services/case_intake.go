package services

import (
	"aarohan/logging"
	"aarohan/models"
)

// CaseIntakeCreatedMessage is shown after a (simulated) case submission
const CaseIntakeCreatedMessage = "Case created (simulated)!"

var intakeMessages = map[string]string{
	"title":             "Case title is required",
	"case_type":         "Select a valid case type",
	"description":       "Case description is required",
	"court":             "Court is required",
	"judge":             "Judge is required",
	"next_hearing_date": "Next hearing date must be a valid date",
	"status":            "Select a valid status",
	"priority":          "Select a valid priority level",
	"client_name":       "Client name is required",
	"client_contact":    "Client contact is required",
}

// SanitizeCaseIntake strips markup from every free-text field
func SanitizeCaseIntake(form models.CaseIntakeForm) models.CaseIntakeForm {
	form.Title = SanitizeText(form.Title)
	form.Description = SanitizeText(form.Description)
	form.Court = SanitizeText(form.Court)
	form.Judge = SanitizeText(form.Judge)
	form.ClientName = SanitizeText(form.ClientName)
	form.ClientContact = SanitizeText(form.ClientContact)
	return form
}

// ValidateCaseIntake checks a sanitized intake form
func ValidateCaseIntake(form models.CaseIntakeForm) error {
	return validateStruct(form, intakeMessages)
}

// SubmitCaseIntake validates the form and pretends to file it.
// Nothing is stored; the fixed case set is never modified.
func SubmitCaseIntake(form models.CaseIntakeForm) (models.CaseIntakeForm, error) {
	form = SanitizeCaseIntake(form)
	if err := ValidateCaseIntake(form); err != nil {
		return form, err
	}
	logging.L().Infow("Case intake accepted (simulated)", "case_type", form.CaseType, "priority", form.Priority)
	return form, nil
}

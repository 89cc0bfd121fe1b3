package models

// Case intake option values
var (
	IntakeCaseTypes  = []string{"civil", "criminal", "family", "corporate", "property"}
	IntakePriorities = []string{"low", "medium", "high"}
	IntakeStatuses   = []string{"pending", "active", "closed"}
)

// CaseIntakeForm holds a new-case submission. It is validated and then discarded.
type CaseIntakeForm struct {
	Title           string `form:"title" validate:"required,max=200"`
	CaseType        string `form:"case_type" validate:"required,oneof=civil criminal family corporate property"`
	Description     string `form:"description" validate:"required,max=5000"`
	Court           string `form:"court" validate:"required,max=200"`
	Judge           string `form:"judge" validate:"required,max=200"`
	NextHearingDate string `form:"next_hearing_date" validate:"required,datetime=2006-01-02"`
	Status          string `form:"status" validate:"required,oneof=pending active closed"`
	Priority        string `form:"priority" validate:"required,oneof=low medium high"`
	ClientName      string `form:"client_name" validate:"required,max=200"`
	ClientContact   string `form:"client_contact" validate:"required,max=200"`
}

// NewCaseIntakeForm returns a form with the default selections
func NewCaseIntakeForm() CaseIntakeForm {
	return CaseIntakeForm{
		Status:   "pending",
		Priority: "medium",
	}
}

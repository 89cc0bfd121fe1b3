package pages

var filingTips = []string{
	"Be specific in the case description for better AI-powered assistance",
	"Include all relevant dates and details about the case",
	"Set the appropriate priority level to help with case scheduling",
}

type selectInput struct {
	Name     string
	Label    string
	Prompt   string
	Options  []string
	Selected string
}

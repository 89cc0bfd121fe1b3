package pages

type titled struct {
	Title       string
	Description string
}

var heroPoints = []string{
	"Reduces case processing time by up to 70%",
	"AI-powered precedent analysis for better legal strategy",
	"Transparent and efficient case management ecosystem",
}

var pillars = []titled{
	{"Intelligent Analysis", "AI-powered legal analysis comparing cases with thousands of precedents"},
	{"Predictive Justice", "Case outcome prediction based on historical data and legal patterns"},
	{"Process Automation", "Automated workflows reducing administrative burden on courts"},
	{"Enhanced Access", "Improved access to justice through digital transformation"},
}

var features = []titled{
	{"AI-Powered Case Analysis", "Intelligent processing of case documents to extract key information, identify precedents, and provide legal insights."},
	{"Predictive Case Outcomes", "Advanced analytics to forecast possible case outcomes based on historical data and similar case patterns."},
	{"Automated Documentation", "Generate legal documents, filings, and forms with AI assistance, reducing paperwork and administrative burden."},
	{"Legal Precedent Matching", "Instantly find and apply relevant case law from a vast database of legal precedents across jurisdictions."},
	{"Efficient Case Scheduling", "Optimize court calendars and hearing schedules to reduce delays and improve resource allocation."},
	{"Data Security & Privacy", "Enterprise-grade security protocols ensuring confidentiality and compliance with legal data protection standards."},
}

// TeamMember is one card of the team section
type TeamMember struct {
	Name string
	Role string
	Bio  string
}

// Team lists the people shown on the landing page
var Team = []TeamMember{
	{Name: "Priyansh Singh", Bio: "Expert in machine learning models for legal document analysis"},
	{Name: "Krish Sen", Bio: "Leads technical innovation in our AI judiciary solutions"},
	{Name: "Harshita Sharma", Bio: "Specializes in predictive models for case outcome analysis"},
	{Name: "Vineet Raj", Bio: "Oversees our AI-powered judiciary platform development"},
}

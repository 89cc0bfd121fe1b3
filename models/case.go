package models

import (
	"strings"
	"time"
)

// CaseStatus is the lifecycle state of a sample case
type CaseStatus string

// Case status constants
const (
	CaseStatusPending   CaseStatus = "pending"
	CaseStatusCompleted CaseStatus = "completed"
)

// Complexity is the effort grading of a case
type Complexity string

// Complexity constants
const (
	ComplexityLow    Complexity = "Low"
	ComplexityMedium Complexity = "Medium"
	ComplexityHigh   Complexity = "High"
)

// Case outcome constants for completed matters
const (
	OutcomeWon     = "Won"
	OutcomeSettled = "Settled"
)

// DateLayout is the format used for every date of a case record
const DateLayout = "2006-01-02"

// CaseRecord is one row of the fixed sample case set.
// ResolutionDate and Outcome are set only on completed records, NextHearing only on pending ones.
type CaseRecord struct {
	ID             string     `json:"id"`
	CaseNumber     string     `json:"case_number"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	DateFiled      time.Time  `json:"date_filed"`
	Status         CaseStatus `json:"status"`
	Complexity     Complexity `json:"complexity"`
	ClientName     string     `json:"client_name"`
	ResolutionDate *time.Time `json:"resolution_date,omitempty"`
	Outcome        *string    `json:"outcome,omitempty"`
	NextHearing    *time.Time `json:"next_hearing,omitempty"`
}

// IsPending reports whether a hearing can still be joined for the case
func (c CaseRecord) IsPending() bool {
	return c.Status == CaseStatusPending
}

// IsCompleted reports whether the case has been disposed
func (c CaseRecord) IsCompleted() bool {
	return c.Status == CaseStatusCompleted
}

// OutcomeValue returns the outcome or an empty string
func (c CaseRecord) OutcomeValue() string {
	if c.Outcome == nil {
		return ""
	}
	return *c.Outcome
}

// MatchesComplexity compares complexity case-insensitively
func (c CaseRecord) MatchesComplexity(level string) bool {
	return strings.EqualFold(string(c.Complexity), level)
}

// SampleCases returns a fresh copy of the fixed case set, in display order
func SampleCases() []CaseRecord {
	out := make([]CaseRecord, len(sampleCases))
	for i, c := range sampleCases {
		out[i] = c.clone()
	}
	return out
}

// FindSampleCase looks a case up by id in the fixed set
func FindSampleCase(id string) (CaseRecord, bool) {
	for _, c := range sampleCases {
		if c.ID == id {
			return c.clone(), true
		}
	}
	return CaseRecord{}, false
}

func (c CaseRecord) clone() CaseRecord {
	out := c
	if c.ResolutionDate != nil {
		d := *c.ResolutionDate
		out.ResolutionDate = &d
	}
	if c.Outcome != nil {
		o := *c.Outcome
		out.Outcome = &o
	}
	if c.NextHearing != nil {
		d := *c.NextHearing
		out.NextHearing = &d
	}
	return out
}

func mustDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := mustDate(s)
	return &t
}

func strPtr(s string) *string {
	return &s
}

var sampleCases = []CaseRecord{
	{
		ID:          "1a2b3c4d",
		CaseNumber:  "CRL-2025-1493",
		Title:       "Sharma v. Delhi Metro Rail Corporation",
		Description: "Personal injury claim resulting from a metro accident at Rajiv Chowk station. Client suffered back and neck injuries when the train made an emergency halt.",
		DateFiled:   mustDate("2025-03-15"),
		Status:      CaseStatusPending,
		Complexity:  ComplexityMedium,
		ClientName:  "Rajesh Sharma",
		NextHearing: datePtr("2025-04-18"),
	},
	{
		ID:          "2e3f4g5h",
		CaseNumber:  "CS-2025-0426",
		Title:       "Verma Property Encroachment Dispute",
		Description: "Civil suit regarding illegal encroachment on client's ancestral property in Lajpat Nagar. Municipal corporation failed to act despite multiple complaints.",
		DateFiled:   mustDate("2025-03-27"),
		Status:      CaseStatusPending,
		Complexity:  ComplexityLow,
		ClientName:  "Sunita Verma",
		NextHearing: datePtr("2025-04-29"),
	},
	{
		ID:          "3i4j5k6l",
		CaseNumber:  "CRL-2025-2109",
		Title:       "State v. Malhotra",
		Description: "Criminal defense case involving alleged GST fraud and tax evasion. Client is accused of misrepresenting business assets to evade ₹1.2 crore in taxes.",
		DateFiled:   mustDate("2025-04-02"),
		Status:      CaseStatusPending,
		Complexity:  ComplexityHigh,
		ClientName:  "Vikram Malhotra",
		NextHearing: datePtr("2025-04-25"),
	},
	{
		ID:          "4m5n6o7p",
		CaseNumber:  "GMC-2025-0878",
		Title:       "Patel Custody Modification",
		Description: "Client seeks modification of existing custody arrangement under the Hindu Marriage Act as ex-spouse is relocating to USA with matrimonial home in Mumbai.",
		DateFiled:   mustDate("2025-03-10"),
		Status:      CaseStatusPending,
		Complexity:  ComplexityMedium,
		ClientName:  "Nisha Patel",
		NextHearing: datePtr("2025-04-16"),
	},
	{
		ID:          "5q6r7s8t",
		CaseNumber:  "ID-2025-0433",
		Title:       "Kumar v. Tech Solutions Pvt Ltd",
		Description: "Client alleges workplace discrimination based on caste and religion, including unfair promotion practices and hostile work environment in Bengaluru IT company.",
		DateFiled:   mustDate("2025-04-05"),
		Status:      CaseStatusPending,
		Complexity:  ComplexityHigh,
		ClientName:  "Arjun Kumar",
		NextHearing: datePtr("2025-05-12"),
	},
	{
		ID:             "6u7v8w9x",
		CaseNumber:     "SMC-2024-2221",
		Title:          "Reddy Medical Negligence",
		Description:    "Successful settlement in medical negligence case against private hospital in Hyderabad. Client received compensation of ₹32 lakhs for additional medical expenses and pain and suffering.",
		DateFiled:      mustDate("2024-11-15"),
		Status:         CaseStatusCompleted,
		Complexity:     ComplexityHigh,
		ClientName:     "Latha Reddy",
		ResolutionDate: datePtr("2025-02-20"),
		Outcome:        strPtr(OutcomeSettled),
	},
	{
		ID:             "7y8z9a0b",
		CaseNumber:     "HMA-2024-1889",
		Title:          "Khanna Divorce Proceedings",
		Description:    "Divorce case under Section 13B of Hindu Marriage Act involving division of substantial assets including family business and property in Delhi NCR. Negotiated favorable settlement terms for client.",
		DateFiled:      mustDate("2024-12-05"),
		Status:         CaseStatusCompleted,
		Complexity:     ComplexityMedium,
		ClientName:     "Amit Khanna",
		ResolutionDate: datePtr("2025-03-01"),
		Outcome:        strPtr(OutcomeSettled),
	},
	{
		ID:             "8c9d0e1f",
		CaseNumber:     "WP-2024-0876",
		Title:          "Singh v. Ministry of External Affairs",
		Description:    "Successfully filed writ petition challenging client's visa denial to Australia. Demonstrated procedural violations in embassy's decision-making process.",
		DateFiled:      mustDate("2024-10-28"),
		Status:         CaseStatusCompleted,
		Complexity:     ComplexityMedium,
		ClientName:     "Manpreet Singh",
		ResolutionDate: datePtr("2025-01-15"),
		Outcome:        strPtr(OutcomeWon),
	},
}

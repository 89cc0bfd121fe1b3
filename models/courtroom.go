package models

import "time"

// DocumentCategory tags a courtroom document
type DocumentCategory string

// Document category constants
const (
	DocumentEvidence  DocumentCategory = "evidence"
	DocumentPetition  DocumentCategory = "petition"
	DocumentAffidavit DocumentCategory = "affidavit"
	DocumentJudgment  DocumentCategory = "judgment"
	DocumentOther     DocumentCategory = "other"
)

// Participant role constants for the hearing roster
const (
	ParticipantJudge           = "judge"
	ParticipantLawyer          = "lawyer"
	ParticipantOpposingCounsel = "opposing-counsel"
	ParticipantClient          = "client"
	ParticipantWitness         = "witness"
)

// Message is one chat line of a courtroom session
type Message struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Document is a file attached to a courtroom session. URL points at
// visitor-scoped memory, never at shared storage.
type Document struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	URL         string           `json:"url"`
	UploadedBy  string           `json:"uploaded_by"`
	Timestamp   time.Time        `json:"timestamp"`
	Category    DocumentCategory `json:"category"`
	ContentType string           `json:"content_type,omitempty"`
	Size        int64            `json:"size"`
}

// Participant is a roster entry; IsPresent is the only mutable field
type Participant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	IsPresent bool   `json:"is_present"`
}

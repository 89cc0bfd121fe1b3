// Package courtroom holds the single-visitor state of a virtual hearing: chat, documents,
// roster and camera/microphone controls. Nothing here is persisted or sent to other parties.
package courtroom

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"aarohan/models"
	"aarohan/services/media"

	"github.com/google/uuid"
)

var (
	ErrNoAbsentParticipants = errors.New("no more participants to add")
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrCaptureResolved      = errors.New("capture result already received")
	ErrDocumentNotFound     = errors.New("document not found")
)

// CaptureState is where the capture request of a session stands
type CaptureState string

const (
	CapturePending CaptureState = "pending"
	CaptureGranted CaptureState = "granted"
	CaptureFailed  CaptureState = "failed"
)

// DefaultCounsel is the lawyer shown when the visitor is not signed in
var DefaultCounsel = models.Participant{
	ID:        "lawyer-123",
	Name:      "Adv. Sanjay Sharma",
	Role:      models.ParticipantLawyer,
	IsPresent: true,
}

// categoryKeywords is checked in order; the first keyword found in the filename wins
var categoryKeywords = []models.DocumentCategory{
	models.DocumentEvidence,
	models.DocumentPetition,
	models.DocumentAffidavit,
	models.DocumentJudgment,
}

// ClassifyDocument tags a file by case-insensitive keyword match on its name
func ClassifyDocument(filename string) models.DocumentCategory {
	lower := strings.ToLower(filename)
	for _, category := range categoryKeywords {
		if strings.Contains(lower, string(category)) {
			return category
		}
	}
	return models.DocumentOther
}

// Option customizes a session
type Option func(*Session)

// WithClock sets the time source
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithIDs sets the identifier generator
func WithIDs(newID func() string) Option {
	return func(s *Session) { s.newID = newID }
}

// WithDocumentURL sets how document URLs are built from a document id
func WithDocumentURL(build func(docID string) string) Option {
	return func(s *Session) { s.documentURL = build }
}

// Session is one visitor's hearing for one case
type Session struct {
	mu sync.Mutex

	caseRecord   models.CaseRecord
	currentUser  models.Participant
	messages     []models.Message
	documents    []models.Document
	participants []models.Participant
	blobs        map[string][]byte

	cameraOn bool
	micOn    bool
	capture  *media.Handle
	state    CaptureState
	closed   bool

	now         func() time.Time
	newID       func() string
	documentURL func(string) string
}

// NewSession opens a hearing for the case, seeded with the sample roster, messages and documents
func NewSession(c models.CaseRecord, currentUser models.Participant, opts ...Option) *Session {
	s := &Session{
		caseRecord:  c,
		currentUser: currentUser,
		blobs:       make(map[string][]byte),
		cameraOn:    true,
		micOn:       true,
		state:       CapturePending,
		now:         time.Now,
		newID:       func() string { return uuid.New().String()[:8] },
		documentURL: func(id string) string { return "#" + id },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.seed()
	return s
}

func (s *Session) seed() {
	now := s.now()
	counsel := s.currentUser

	clientName := s.caseRecord.ClientName
	if clientName == "" {
		clientName = "Client"
	}

	s.participants = []models.Participant{
		{ID: "judge-1", Name: "Hon. Justice Mehta", Role: models.ParticipantJudge, IsPresent: true},
		{ID: counsel.ID, Name: counsel.Name, Role: models.ParticipantLawyer, IsPresent: true},
		{ID: "opposing-counsel", Name: "Adv. Priya Desai", Role: models.ParticipantOpposingCounsel, IsPresent: true},
		{ID: "client-1", Name: clientName, Role: models.ParticipantClient, IsPresent: false},
		{ID: "witness-1", Name: "Dr. Anand (Expert Witness)", Role: models.ParticipantWitness, IsPresent: false},
	}

	s.documents = []models.Document{
		{ID: "doc-1", Name: "Petition.pdf", URL: "#", UploadedBy: counsel.Name, Timestamp: now.Add(-24 * time.Hour), Category: models.DocumentPetition},
		{ID: "doc-2", Name: "Evidence_Medical_Report.pdf", URL: "#", UploadedBy: counsel.Name, Timestamp: now.Add(-12 * time.Hour), Category: models.DocumentEvidence},
		{ID: "doc-3", Name: "Client_Affidavit.pdf", URL: "#", UploadedBy: counsel.Name, Timestamp: now.Add(-6 * time.Hour), Category: models.DocumentAffidavit},
	}

	s.messages = []models.Message{
		{
			ID:        "msg-1",
			UserID:    "judge-1",
			UserName:  "Hon. Justice Mehta",
			Content:   fmt.Sprintf("This virtual hearing of Case No. %s is now in session. Counsel may present their arguments.", s.caseRecord.CaseNumber),
			Timestamp: now.Add(-15 * time.Minute),
		},
		{
			ID:        "msg-2",
			UserID:    counsel.ID,
			UserName:  counsel.Name,
			Content:   "Thank you, Your Honor. I represent the plaintiff in this matter.",
			Timestamp: now.Add(-14 * time.Minute),
		},
		{
			ID:        "msg-3",
			UserID:    "opposing-counsel",
			UserName:  "Adv. Priya Desai",
			Content:   "Good afternoon, Your Honor. Appearing for the respondent.",
			Timestamp: now.Add(-13 * time.Minute),
		},
	}
}

// Case returns the case the hearing was opened for
func (s *Session) Case() models.CaseRecord {
	return s.caseRecord
}

// CurrentUser returns the participant acting in this session
func (s *Session) CurrentUser() models.Participant {
	return s.currentUser
}

// SendMessage appends a message from the current user. Blank input is ignored and reports false.
func (s *Session) SendMessage(text string) (models.Message, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Message{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := models.Message{
		ID:        s.newID(),
		UserID:    s.currentUser.ID,
		UserName:  s.currentUser.Name,
		Content:   text,
		Timestamp: s.now(),
	}
	s.messages = append(s.messages, msg)
	return msg, true
}

// UploadDocument classifies the file and keeps its bytes in memory for this session only
func (s *Session) UploadDocument(name, contentType string, data []byte) models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	doc := models.Document{
		ID:          id,
		Name:        name,
		URL:         s.documentURL(id),
		UploadedBy:  s.currentUser.Name,
		Timestamp:   s.now(),
		Category:    ClassifyDocument(name),
		ContentType: contentType,
		Size:        int64(len(data)),
	}
	s.blobs[id] = data
	s.documents = append(s.documents, doc)
	return doc
}

// DocumentContent returns an uploaded document and its bytes
func (s *Session) DocumentContent(id string) (models.Document, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.blobs[id]
	if !ok {
		return models.Document{}, nil, ErrDocumentNotFound
	}
	for _, d := range s.documents {
		if d.ID == id {
			return d, data, nil
		}
	}
	return models.Document{}, nil, ErrDocumentNotFound
}

// AttachCapture consumes the result of the one capture request of this session.
// A failed result is returned as the error so the caller can notify the visitor.
func (s *Session) AttachCapture(res media.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != CapturePending || s.closed {
		if res.Handle != nil {
			res.Handle.Release()
		}
		return ErrCaptureResolved
	}

	if !res.OK() {
		s.state = CaptureFailed
		if res.Err != nil {
			return res.Err
		}
		return media.ErrCaptureUnavailable
	}

	s.capture = res.Handle
	s.state = CaptureGranted
	return nil
}

// CaptureState reports whether capture is pending, granted or failed
func (s *Session) CaptureState() CaptureState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ToggleCamera flips the displayed camera state and every video track of the held capture.
// Without a capture handle only the displayed state changes.
func (s *Session) ToggleCamera() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.capture != nil {
		s.capture.Toggle(media.KindVideo)
	}
	s.cameraOn = !s.cameraOn
	return s.cameraOn
}

// ToggleMicrophone flips the displayed microphone state and every audio track of the held capture
func (s *Session) ToggleMicrophone() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.capture != nil {
		s.capture.Toggle(media.KindAudio)
	}
	s.micOn = !s.micOn
	return s.micOn
}

// CameraOn reports the displayed camera state
func (s *Session) CameraOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cameraOn
}

// MicrophoneOn reports the displayed microphone state
func (s *Session) MicrophoneOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.micOn
}

// AddParticipant marks the first absent roster member as present
func (s *Session) AddParticipant() (models.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.participants {
		if !s.participants[i].IsPresent {
			s.participants[i].IsPresent = true
			return s.participants[i], nil
		}
	}
	return models.Participant{}, ErrNoAbsentParticipants
}

// RemoveParticipant marks a roster member as absent
func (s *Session) RemoveParticipant(id string) (models.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.participants {
		if s.participants[i].ID == id {
			s.participants[i].IsPresent = false
			return s.participants[i], nil
		}
	}
	return models.Participant{}, ErrParticipantNotFound
}

// Messages returns a copy of the chat
func (s *Session) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.messages...)
}

// Documents returns a copy of the document list
func (s *Session) Documents() []models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Document(nil), s.documents...)
}

// Participants returns a copy of the roster
func (s *Session) Participants() []models.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Participant(nil), s.participants...)
}

// Close releases the capture handle and drops uploaded bytes. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.capture != nil {
		s.capture.Release()
	}
	s.blobs = make(map[string][]byte)
	s.closed = true
}

// Closed reports whether the session was closed
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

package pages

import (
	"time"

	"aarohan/models"
	"aarohan/services"
	"aarohan/services/courtroom"
	"aarohan/templates/components"
)

// CourtroomView is what the hearing screen renders
type CourtroomView struct {
	Case         models.CaseRecord
	CurrentUser  models.Participant
	Messages     []models.Message
	Documents    []models.Document
	Participants []models.Participant
	CameraOn     bool
	MicOn        bool
	Capture      courtroom.CaptureState
	Now          time.Time
}

// NewCourtroomView snapshots a session for rendering
func NewCourtroomView(s *courtroom.Session, now time.Time) CourtroomView {
	return CourtroomView{
		Case:         s.Case(),
		CurrentUser:  s.CurrentUser(),
		Messages:     s.Messages(),
		Documents:    s.Documents(),
		Participants: s.Participants(),
		CameraOn:     s.CameraOn(),
		MicOn:        s.MicrophoneOn(),
		Capture:      s.CaptureState(),
		Now:          now,
	}
}

// courtroomConfig is handed to the capture script
type courtroomConfig struct {
	CaptureURL    string `json:"captureUrl"`
	CameraURL     string `json:"cameraUrl"`
	MicrophoneURL string `json:"microphoneUrl"`
	CSRF          string `json:"csrf"`
	CameraOn      bool   `json:"cameraOn"`
	MicOn         bool   `json:"micOn"`
	CaptureState  string `json:"captureState"`
}

var roleLabels = map[string]string{
	models.ParticipantJudge:           "Judge",
	models.ParticipantLawyer:          "Counsel",
	models.ParticipantOpposingCounsel: "Opp. Counsel",
	models.ParticipantClient:          "Client",
}

func roleLabel(role string) string {
	if l, ok := roleLabels[role]; ok {
		return l
	}
	return "Witness"
}

// Route is a courtroom endpoint of this hearing
func (v CourtroomView) Route(suffix string) string {
	return services.CourtroomRoute(v.Case.ID) + suffix
}

// Title falls back to a generic heading for an untitled case
func (v CourtroomView) Title() string {
	if v.Case.Title == "" {
		return "Virtual Hearing"
	}
	return v.Case.Title
}

// Config is the capture script's view of the hearing
func (v CourtroomView) Config(csrf string) courtroomConfig {
	return courtroomConfig{
		CaptureURL:    v.Route("/capture"),
		CameraURL:     v.Route("/camera"),
		MicrophoneURL: v.Route("/microphone"),
		CSRF:          csrf,
		CameraOn:      v.CameraOn,
		MicOn:         v.MicOn,
		CaptureState:  string(v.Capture),
	}
}

// Present lists the participants currently in the room
func (v CourtroomView) Present() []models.Participant {
	var out []models.Participant
	for _, p := range v.Participants {
		if p.IsPresent {
			out = append(out, p)
		}
	}
	return out
}

func withScript(page components.Page, script string) components.Page {
	page.Scripts = append(append([]string(nil), page.Scripts...), script)
	return page
}

func messageClasses(m models.Message, me string) []string {
	switch m.UserID {
	case "judge-1":
		return []string{"message", "message-judge"}
	case me:
		return []string{"message", "message-own"}
	}
	return []string{"message"}
}

func stateClass(on bool) string {
	if on {
		return "control-on"
	}
	return "control-off"
}

func onOff(label string, on bool) string {
	if on {
		return label + " on"
	}
	return label + " off"
}

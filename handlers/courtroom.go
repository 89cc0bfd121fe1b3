package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"aarohan/logging"
	"aarohan/middleware"
	"aarohan/models"
	"aarohan/services"
	"aarohan/services/courtroom"
	"aarohan/services/media"
	"aarohan/services/visitor"
	"aarohan/templates/pages"

	"github.com/labstack/echo/v4"
)

// Courtroom notices
const (
	NoCaseDetailsMessage       = "No case details found. Redirecting to pending cases."
	CaptureFailedMessage       = "Could not access camera or microphone."
	NoMoreParticipantsMessage  = "No more participants to add."
	ParticipantRemovedMessage  = "Participant removed from the hearing."
	SelectDocumentMessage      = "Select a document to upload."
	documentUploadedMessageFmt = "Document %q uploaded successfully."
)

func courtroomPath(caseID string) string {
	return services.CourtroomRoute(caseID)
}

// currentCounsel is the participant acting for the signed-in lawyer, or the sample counsel
func currentCounsel(c echo.Context) models.Participant {
	session := middleware.GetCurrentSession(c)
	if session == nil || session.Name == "" {
		return courtroom.DefaultCounsel
	}
	return models.Participant{
		ID:        session.ProviderUserID,
		Name:      session.Name,
		Role:      models.ParticipantLawyer,
		IsPresent: true,
	}
}

// CourtroomHandler opens the hearing handed over by the case list, or shows the one already open.
// Without either the visitor is sent back to the case list.
func CourtroomHandler(c echo.Context) error {
	v, err := requireVisitor(c)
	if err != nil {
		return err
	}
	caseID := c.Param("caseId")

	if record, ok := v.TakeNavigationCase(caseID); ok {
		base := courtroomPath(record.ID)
		session := courtroom.NewSession(record, currentCounsel(c),
			courtroom.WithDocumentURL(func(docID string) string { return base + "/documents/" + docID }),
		)
		v.OpenCourtroom(session)
		logging.L().Infow("Courtroom opened", "case", record.CaseNumber, "visitor", v.ID)
	}

	session := v.Courtroom(caseID)
	if session == nil {
		return redirectWith(c, v, visitor.FlashError, NoCaseDetailsMessage, services.RouteCaseListing)
	}

	return render(c, pages.Courtroom(pageFor(c, "courtroom"), pages.NewCourtroomView(session, time.Now())))
}

// CourtroomIndexHandler answers the bare courtroom path, which names no case
func CourtroomIndexHandler(c echo.Context) error {
	v, err := requireVisitor(c)
	if err != nil {
		return err
	}
	return redirectWith(c, v, visitor.FlashError, NoCaseDetailsMessage, services.RouteCaseListing)
}

type courtroomHandlerFunc func(c echo.Context, v *visitor.Visitor, s *courtroom.Session) error

// withCourtroom resolves the visitor's open session for the :caseId route parameter
func withCourtroom(fn courtroomHandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		v, err := requireVisitor(c)
		if err != nil {
			return err
		}
		s := v.Courtroom(c.Param("caseId"))
		if s == nil {
			if wantsJSON(c) {
				return echo.NewHTTPError(http.StatusNotFound, NoCaseDetailsMessage)
			}
			return redirectWith(c, v, visitor.FlashError, NoCaseDetailsMessage, services.RouteCaseListing)
		}
		return fn(c, v, s)
	}
}

func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

func backToCourtroom(c echo.Context, s *courtroom.Session, anchor string) error {
	return c.Redirect(http.StatusSeeOther, courtroomPath(s.Case().ID)+anchor)
}

// SendMessageHandler appends a chat message as typed; blank input is ignored.
// Messages are only ever rendered escaped.
var SendMessageHandler = withCourtroom(func(c echo.Context, v *visitor.Visitor, s *courtroom.Session) error {
	s.SendMessage(c.FormValue("content"))
	return backToCourtroom(c, s, "#messages")
})

// UploadDocumentHandler keeps an uploaded file in the visitor's session memory
var UploadDocumentHandler = withCourtroom(func(c echo.Context, v *visitor.Visitor, s *courtroom.Session) error {
	file, err := c.FormFile("document")
	if err != nil {
		return redirectWith(c, v, visitor.FlashError, SelectDocumentMessage, courtroomPath(s.Case().ID))
	}

	cfg := getConfig(c)
	limit := cfg.MaxUploadBytes()
	if file.Size > limit {
		msg := fmt.Sprintf("Document exceeds the %d MB limit.", limit>>20)
		return redirectWith(c, v, visitor.FlashError, msg, courtroomPath(s.Case().ID))
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to read upload")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to read upload")
	}
	if int64(len(data)) > limit {
		msg := fmt.Sprintf("Document exceeds the %d MB limit.", limit>>20)
		return redirectWith(c, v, visitor.FlashError, msg, courtroomPath(s.Case().ID))
	}

	name := services.SanitizeText(filepath.Base(file.Filename))
	if name == "" || name == "." {
		name = "document"
	}
	contentType := file.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	doc := s.UploadDocument(name, contentType, data)
	return redirectWith(c, v, visitor.FlashSuccess, fmt.Sprintf(documentUploadedMessageFmt, doc.Name), courtroomPath(s.Case().ID))
})

// DocumentHandler serves an uploaded document back to the visitor who uploaded it
var DocumentHandler = withCourtroom(func(c echo.Context, v *visitor.Visitor, s *courtroom.Session) error {
	doc, data, err := s.DocumentContent(c.Param("docID"))
	if errors.Is(err, courtroom.ErrDocumentNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Document not found")
	}
	if err != nil {
		return err
	}

	contentType := doc.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	h := c.Response().Header()
	h.Set(echo.HeaderContentDisposition, mime.FormatMediaType("inline", map[string]string{"filename": doc.Name}))
	h.Set(echo.HeaderXContentTypeOptions, "nosniff")
	h.Set("Cache-Control", "no-store")
	return c.Blob(http.StatusOK, contentType, data)
})

// CameraHandler flips the camera
var CameraHandler = withCourtroom(func(c echo.Context, v *visitor.Visitor, s *courtroom.Session) error {
	on := s.ToggleCamera()
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, map[string]bool{"cameraOn": on})
	}
	return backToCourtroom(c, s, "")
})

// MicrophoneHandler flips the microphone
var MicrophoneHandler = withCourtroom(func(c echo.Context, v *visitor.Visitor, s *courtroom.Session) error {
	on := s.ToggleMicrophone()
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, map[string]bool{"micOn": on})
	}
	return backToCourtroom(c, s, "")
})

// CaptureReport is what the browser sends once getUserMedia settles
type CaptureReport struct {
	Granted bool   `json:"granted"`
	Video   bool   `json:"video"`
	Audio   bool   `json:"audio"`
	Error   string `json:"error"`
}

// Result converts the report into a capture result
func (r CaptureReport) Result() media.Result {
	if !r.Granted {
		if r.Error == "" {
			return media.Failed(nil)
		}
		return media.Failed(fmt.Errorf("%w: %s", media.ErrCaptureUnavailable, r.Error))
	}
	return media.Granted(media.NewHandleFor(media.Constraints{Video: r.Video, Audio: r.Audio}))
}

type captureResponse struct {
	State    courtroom.CaptureState `json:"state"`
	CameraOn bool                   `json:"cameraOn"`
	MicOn    bool                   `json:"micOn"`
	Message  string                 `json:"message,omitempty"`
}

// CaptureHandler records the outcome of the session's one capture request.
// A denial is reported in the response for the script to show.
var CaptureHandler = withCourtroom(func(c echo.Context, v *visitor.Visitor, s *courtroom.Session) error {
	var report CaptureReport
	if err := c.Bind(&report); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid capture report")
	}

	err := s.AttachCapture(report.Result())
	resp := captureResponse{State: s.CaptureState(), CameraOn: s.CameraOn(), MicOn: s.MicrophoneOn()}
	switch {
	case errors.Is(err, courtroom.ErrCaptureResolved):
		return c.JSON(http.StatusConflict, resp)
	case err != nil:
		logging.L().Infow("Capture unavailable", "case", s.Case().CaseNumber, "error", err)
		resp.Message = CaptureFailedMessage
	}
	return c.JSON(http.StatusOK, resp)
})

// AddParticipantHandler brings the first absent roster member into the hearing
var AddParticipantHandler = withCourtroom(func(c echo.Context, v *visitor.Visitor, s *courtroom.Session) error {
	p, err := s.AddParticipant()
	if errors.Is(err, courtroom.ErrNoAbsentParticipants) {
		return redirectWith(c, v, visitor.FlashError, NoMoreParticipantsMessage, courtroomPath(s.Case().ID))
	}
	if err != nil {
		return err
	}
	return redirectWith(c, v, visitor.FlashSuccess, p.Name+" added to the hearing.", courtroomPath(s.Case().ID))
})

// RemoveParticipantHandler marks a roster member absent
var RemoveParticipantHandler = withCourtroom(func(c echo.Context, v *visitor.Visitor, s *courtroom.Session) error {
	_, err := s.RemoveParticipant(c.Param("pid"))
	if errors.Is(err, courtroom.ErrParticipantNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Participant not found")
	}
	if err != nil {
		return err
	}
	return redirectWith(c, v, visitor.FlashSuccess, ParticipantRemovedMessage, courtroomPath(s.Case().ID))
})

// LeaveCourtroomHandler closes the hearing, releasing the capture, and returns to the case list
func LeaveCourtroomHandler(c echo.Context) error {
	v, err := requireVisitor(c)
	if err != nil {
		return err
	}
	if v.Courtroom(c.Param("caseId")) != nil {
		v.CloseCourtroom()
	}
	return c.Redirect(http.StatusSeeOther, services.RouteCaseListing)
}

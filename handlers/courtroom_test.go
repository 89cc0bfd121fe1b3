package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"aarohan/middleware"
	"aarohan/models"
	"aarohan/services/courtroom"
	"aarohan/services/visitor"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCaseID = "1a2b3c4d"

// courtroomRequest builds a context for v with the given route params as name/value pairs
func courtroomRequest(v *visitor.Visitor, method, target string, body io.Reader, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	_, c, rec := setupEcho(method, target, body)
	c.Set(middleware.ContextKeyVisitor, v)

	names := []string{"caseId"}
	values := []string{testCaseID}
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

// joinedCourtroom performs the join handover and first courtroom load
func joinedCourtroom(t *testing.T) (*visitor.Visitor, *courtroom.Session) {
	t.Helper()
	v := visitor.NewStore().Create()
	record, ok := models.FindSampleCase(testCaseID)
	require.True(t, ok)
	v.SetNavigationCase(record)

	c, rec := courtroomRequest(v, http.MethodGet, "/courtroom/"+testCaseID, nil)
	require.NoError(t, CourtroomHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	s := v.Courtroom(testCaseID)
	require.NotNil(t, s)
	return v, s
}

func formBody(key, value string) io.Reader {
	return strings.NewReader(url.Values{key: {value}}.Encode())
}

func TestCourtroomHandler(t *testing.T) {
	t.Run("Direct visit goes back to the case list", func(t *testing.T) {
		v := visitor.NewStore().Create()
		c, rec := courtroomRequest(v, http.MethodGet, "/courtroom/"+testCaseID, nil)

		assert.NoError(t, CourtroomHandler(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/pending-cases", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, []string{NoCaseDetailsMessage}, flashMessages(v))
	})

	t.Run("Handover opens the hearing", func(t *testing.T) {
		v := visitor.NewStore().Create()
		record, _ := models.FindSampleCase(testCaseID)
		v.SetNavigationCase(record)

		c, rec := courtroomRequest(v, http.MethodGet, "/courtroom/"+testCaseID, nil)
		assert.NoError(t, CourtroomHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, "Sharma v. Delhi Metro Rail Corporation")
		assert.Contains(t, body, "CNR: CRL-2025-1493")
		assert.Contains(t, body, "Adv. Sanjay Sharma (You)")
		assert.Contains(t, body, `id="courtroom-config"`)
		assert.NotContains(t, body, "Rajesh Sharma</span>", "absent client is not listed")
	})

	t.Run("Reload keeps the open hearing", func(t *testing.T) {
		v, s := joinedCourtroom(t)
		s.SendMessage("Objection")

		c, rec := courtroomRequest(v, http.MethodGet, "/courtroom/"+testCaseID, nil)
		assert.NoError(t, CourtroomHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Objection")
		assert.Same(t, s, v.Courtroom(testCaseID))
	})

	t.Run("Payload for another case is ignored", func(t *testing.T) {
		v := visitor.NewStore().Create()
		record, _ := models.FindSampleCase("3i4j5k6l")
		v.SetNavigationCase(record)

		c, rec := courtroomRequest(v, http.MethodGet, "/courtroom/"+testCaseID, nil)
		assert.NoError(t, CourtroomHandler(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Nil(t, v.Courtroom("3i4j5k6l"))
	})
}

func TestSendMessageHandler(t *testing.T) {
	v, s := joinedCourtroom(t)

	c, rec := courtroomRequest(v, http.MethodPost, "/courtroom/"+testCaseID+"/messages", formBody("content", "  May it please the court  "))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	assert.NoError(t, SendMessageHandler(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/courtroom/"+testCaseID+"#messages", rec.Header().Get(echo.HeaderLocation))

	msgs := s.Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, "May it please the court", msgs[3].Content)
	assert.Equal(t, courtroom.DefaultCounsel.ID, msgs[3].UserID)

	c, _ = courtroomRequest(v, http.MethodPost, "/courtroom/"+testCaseID+"/messages", formBody("content", "   "))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	assert.NoError(t, SendMessageHandler(c))
	assert.Len(t, s.Messages(), 4)

	t.Run("Angle brackets are kept and shown escaped", func(t *testing.T) {
		c, _ := courtroomRequest(v, http.MethodPost, "/courtroom/"+testCaseID+"/messages", formBody("content", "Exhibit x <y> z & co"))
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		assert.NoError(t, SendMessageHandler(c))

		msgs := s.Messages()
		require.Len(t, msgs, 5)
		assert.Equal(t, "Exhibit x <y> z & co", msgs[4].Content)

		c, rec := courtroomRequest(v, http.MethodGet, "/courtroom/"+testCaseID, nil)
		assert.NoError(t, CourtroomHandler(c))
		assert.Contains(t, rec.Body.String(), "Exhibit x &lt;y&gt; z &amp; co")
	})
}

func TestCourtroomIndexHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/courtroom", nil)
	v := withVisitor(c)

	assert.NoError(t, CourtroomIndexHandler(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/pending-cases", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, []string{NoCaseDetailsMessage}, flashMessages(v))
}

func uploadBody(t *testing.T, filename string, data []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("document", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadDocumentHandler(t *testing.T) {
	t.Run("Upload is classified and served back", func(t *testing.T) {
		v, s := joinedCourtroom(t)
		body, contentType := uploadBody(t, "Evidence_Photo.png", []byte("fake png"))

		c, rec := courtroomRequest(v, http.MethodPost, "/courtroom/"+testCaseID+"/documents", body)
		c.Request().Header.Set(echo.HeaderContentType, contentType)
		assert.NoError(t, UploadDocumentHandler(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, []string{`Document "Evidence_Photo.png" uploaded successfully.`}, flashMessages(v))

		docs := s.Documents()
		require.Len(t, docs, 4)
		doc := docs[3]
		assert.Equal(t, models.DocumentEvidence, doc.Category)
		assert.Equal(t, "/courtroom/"+testCaseID+"/documents/"+doc.ID, doc.URL)

		c, rec = courtroomRequest(v, http.MethodGet, doc.URL, nil, "docID", doc.ID)
		assert.NoError(t, DocumentHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "fake png", rec.Body.String())
		assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "inline")
		assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	})

	t.Run("Missing file", func(t *testing.T) {
		v, s := joinedCourtroom(t)
		c, rec := courtroomRequest(v, http.MethodPost, "/courtroom/"+testCaseID+"/documents", nil)

		assert.NoError(t, UploadDocumentHandler(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, []string{SelectDocumentMessage}, flashMessages(v))
		assert.Len(t, s.Documents(), 3)
	})

	t.Run("Oversized file", func(t *testing.T) {
		v, s := joinedCourtroom(t)
		body, contentType := uploadBody(t, "petition.pdf", bytes.Repeat([]byte("x"), 1<<20+1))

		c, _ := courtroomRequest(v, http.MethodPost, "/courtroom/"+testCaseID+"/documents", body)
		c.Request().Header.Set(echo.HeaderContentType, contentType)
		assert.NoError(t, UploadDocumentHandler(c))
		assert.Equal(t, []string{"Document exceeds the 1 MB limit."}, flashMessages(v))
		assert.Len(t, s.Documents(), 3)
	})

	t.Run("Unknown document", func(t *testing.T) {
		v, _ := joinedCourtroom(t)
		c, _ := courtroomRequest(v, http.MethodGet, "/courtroom/"+testCaseID+"/documents/doc-1", nil, "docID", "doc-1")

		err := DocumentHandler(c)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})
}

func TestToggleHandlers(t *testing.T) {
	v, s := joinedCourtroom(t)

	c, rec := courtroomRequest(v, http.MethodPost, "/courtroom/"+testCaseID+"/camera", nil)
	c.Request().Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	assert.NoError(t, CameraHandler(c))
	assert.JSONEq(t, `{"cameraOn":false}`, rec.Body.String())
	assert.False(t, s.CameraOn())

	c, rec = courtroomRequest(v, http.MethodPost, "/courtroom/"+testCaseID+"/microphone", nil)
	assert.NoError(t, MicrophoneHandler(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.False(t, s.MicrophoneOn())

	t.Run("Without an open hearing", func(t *testing.T) {
		other := visitor.NewStore().Create()
		c, _ := courtroomRequest(other, http.MethodPost, "/courtroom/"+testCaseID+"/camera", nil)
		c.Request().Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)

		err := CameraHandler(c)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})
}

func postCapture(v *visitor.Visitor, report string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := courtroomRequest(v, http.MethodPost, "/courtroom/"+testCaseID+"/capture", strings.NewReader(report))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c.Request().Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	return c, rec
}

func TestCaptureHandler(t *testing.T) {
	t.Run("Grant is accepted once", func(t *testing.T) {
		v, s := joinedCourtroom(t)

		c, rec := postCapture(v, `{"granted":true,"video":true,"audio":true}`)
		assert.NoError(t, CaptureHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp captureResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, courtroom.CaptureGranted, resp.State)
		assert.True(t, resp.CameraOn)
		assert.Empty(t, resp.Message)
		assert.Equal(t, courtroom.CaptureGranted, s.CaptureState())

		c, rec = postCapture(v, `{"granted":true,"video":true,"audio":true}`)
		assert.NoError(t, CaptureHandler(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Denial reports the failure", func(t *testing.T) {
		v, s := joinedCourtroom(t)

		c, rec := postCapture(v, `{"granted":false,"error":"NotAllowedError"}`)
		assert.NoError(t, CaptureHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp captureResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, courtroom.CaptureFailed, resp.State)
		assert.Equal(t, CaptureFailedMessage, resp.Message)
		assert.Equal(t, courtroom.CaptureFailed, s.CaptureState())
		assert.Empty(t, flashMessages(v))

		// The hearing stays usable
		assert.False(t, s.ToggleCamera())
	})
}

func TestParticipantHandlers(t *testing.T) {
	v, s := joinedCourtroom(t)
	base := "/courtroom/" + testCaseID

	c, _ := courtroomRequest(v, http.MethodPost, base+"/participants", nil)
	assert.NoError(t, AddParticipantHandler(c))
	assert.Equal(t, []string{"Rajesh Sharma added to the hearing."}, flashMessages(v))

	c, _ = courtroomRequest(v, http.MethodPost, base+"/participants", nil)
	assert.NoError(t, AddParticipantHandler(c))
	assert.Equal(t, []string{"Dr. Anand (Expert Witness) added to the hearing."}, flashMessages(v))

	c, rec := courtroomRequest(v, http.MethodPost, base+"/participants", nil)
	assert.NoError(t, AddParticipantHandler(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{NoMoreParticipantsMessage}, flashMessages(v))

	c, _ = courtroomRequest(v, http.MethodPost, base+"/participants/opposing-counsel/remove", nil, "pid", "opposing-counsel")
	assert.NoError(t, RemoveParticipantHandler(c))
	assert.Equal(t, []string{ParticipantRemovedMessage}, flashMessages(v))
	assert.False(t, s.Participants()[2].IsPresent)

	c, _ = courtroomRequest(v, http.MethodPost, base+"/participants/nobody/remove", nil, "pid", "nobody")
	err := RemoveParticipantHandler(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestLeaveCourtroomHandler(t *testing.T) {
	v, s := joinedCourtroom(t)

	c, rec := postCapture(v, `{"granted":true,"video":true,"audio":true}`)
	require.NoError(t, CaptureHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = courtroomRequest(v, http.MethodPost, "/courtroom/"+testCaseID+"/leave", nil)
	assert.NoError(t, LeaveCourtroomHandler(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/pending-cases", rec.Header().Get(echo.HeaderLocation))
	assert.True(t, s.Closed())
	assert.Nil(t, v.Courtroom(testCaseID))

	c, rec = courtroomRequest(v, http.MethodGet, "/courtroom/"+testCaseID, nil)
	assert.NoError(t, CourtroomHandler(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

package courtroom

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"aarohan/models"
	"aarohan/services/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*Session, *time.Time) {
	t.Helper()
	c, ok := models.FindSampleCase("1a2b3c4d")
	require.True(t, ok)

	now := time.Date(2025, 4, 18, 10, 0, 0, 0, time.UTC)
	seq := 0
	s := NewSession(c, DefaultCounsel,
		WithClock(func() time.Time { return now }),
		WithIDs(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
		WithDocumentURL(func(id string) string { return "/courtroom/1a2b3c4d/documents/" + id }),
	)
	return s, &now
}

func TestNewSessionSeedsSampleState(t *testing.T) {
	s, _ := newTestSession(t)

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Contains(t, msgs[0].Content, "CRL-2025-1493")
	assert.Equal(t, "judge-1", msgs[0].UserID)

	docs := s.Documents()
	require.Len(t, docs, 3)
	assert.Equal(t, models.DocumentPetition, docs[0].Category)
	assert.Equal(t, models.DocumentEvidence, docs[1].Category)
	assert.Equal(t, models.DocumentAffidavit, docs[2].Category)

	roster := s.Participants()
	require.Len(t, roster, 5)
	assert.Equal(t, "Rajesh Sharma", roster[3].Name)
	assert.False(t, roster[3].IsPresent)
	assert.False(t, roster[4].IsPresent)

	assert.True(t, s.CameraOn())
	assert.True(t, s.MicrophoneOn())
	assert.Equal(t, CapturePending, s.CaptureState())
}

func TestSendMessage(t *testing.T) {
	t.Run("Whitespace is ignored", func(t *testing.T) {
		s, _ := newTestSession(t)
		before := s.Messages()

		_, ok := s.SendMessage("  ")
		assert.False(t, ok)
		assert.Equal(t, before, s.Messages())
	})

	t.Run("Text is appended once", func(t *testing.T) {
		s, now := newTestSession(t)

		msg, ok := s.SendMessage("Objection")
		require.True(t, ok)

		msgs := s.Messages()
		require.Len(t, msgs, 4)
		assert.Equal(t, msg, msgs[3])
		assert.Equal(t, "Objection", msg.Content)
		assert.Equal(t, *now, msg.Timestamp)
		assert.Equal(t, DefaultCounsel.ID, msg.UserID)
		assert.NotEmpty(t, msg.ID)
	})

	t.Run("Text is trimmed", func(t *testing.T) {
		s, _ := newTestSession(t)
		msg, ok := s.SendMessage("  Sustained \n")
		require.True(t, ok)
		assert.Equal(t, "Sustained", msg.Content)
	})
}

func TestClassifyDocument(t *testing.T) {
	tests := map[string]models.DocumentCategory{
		"Evidence_Photo.png":        models.DocumentEvidence,
		"notes.txt":                 models.DocumentOther,
		"WRIT_PETITION.pdf":         models.DocumentPetition,
		"client-affidavit.docx":     models.DocumentAffidavit,
		"final judgment.pdf":        models.DocumentJudgment,
		"petition_with_evidence.md": models.DocumentEvidence,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, ClassifyDocument(name))
		})
	}
}

func TestUploadDocument(t *testing.T) {
	s, now := newTestSession(t)

	doc := s.UploadDocument("Evidence_Photo.png", "image/png", []byte("png"))
	assert.Equal(t, models.DocumentEvidence, doc.Category)
	assert.Equal(t, DefaultCounsel.Name, doc.UploadedBy)
	assert.Equal(t, *now, doc.Timestamp)
	assert.Equal(t, "/courtroom/1a2b3c4d/documents/"+doc.ID, doc.URL)
	assert.Equal(t, int64(3), doc.Size)
	assert.Len(t, s.Documents(), 4)

	got, data, err := s.DocumentContent(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
	assert.Equal(t, []byte("png"), data)

	_, _, err = s.DocumentContent("doc-1")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestToggleWithoutCapture(t *testing.T) {
	s, _ := newTestSession(t)

	assert.False(t, s.ToggleCamera())
	assert.False(t, s.CameraOn())
	assert.False(t, s.ToggleMicrophone())
	assert.True(t, s.ToggleMicrophone())
}

func TestToggleWithCapture(t *testing.T) {
	s, _ := newTestSession(t)
	video, audio := media.NewTrack(media.KindVideo), media.NewTrack(media.KindAudio)
	require.NoError(t, s.AttachCapture(media.Granted(media.NewHandle(video, audio))))
	assert.Equal(t, CaptureGranted, s.CaptureState())

	s.ToggleCamera()
	assert.False(t, video.Enabled())
	assert.True(t, audio.Enabled())

	s.ToggleMicrophone()
	assert.False(t, audio.Enabled())

	s.ToggleCamera()
	assert.True(t, video.Enabled())
}

func TestAttachCapture(t *testing.T) {
	t.Run("Failure is reported once", func(t *testing.T) {
		s, _ := newTestSession(t)
		err := s.AttachCapture(media.Failed(nil))
		assert.True(t, errors.Is(err, media.ErrCaptureUnavailable))
		assert.Equal(t, CaptureFailed, s.CaptureState())

		late := media.NewHandleFor(media.DefaultConstraints)
		assert.ErrorIs(t, s.AttachCapture(media.Granted(late)), ErrCaptureResolved)
		assert.True(t, late.Released())
	})

	t.Run("Second grant is refused", func(t *testing.T) {
		s, _ := newTestSession(t)
		first := media.NewHandleFor(media.DefaultConstraints)
		require.NoError(t, s.AttachCapture(media.Granted(first)))

		second := media.NewHandleFor(media.DefaultConstraints)
		assert.ErrorIs(t, s.AttachCapture(media.Granted(second)), ErrCaptureResolved)
		assert.False(t, first.Released())
		assert.True(t, second.Released())
	})
}

func TestParticipants(t *testing.T) {
	s, _ := newTestSession(t)

	p, err := s.AddParticipant()
	require.NoError(t, err)
	assert.Equal(t, "client-1", p.ID)
	assert.True(t, p.IsPresent)

	p, err = s.AddParticipant()
	require.NoError(t, err)
	assert.Equal(t, "witness-1", p.ID)

	_, err = s.AddParticipant()
	assert.ErrorIs(t, err, ErrNoAbsentParticipants)

	p, err = s.RemoveParticipant("judge-1")
	require.NoError(t, err)
	assert.False(t, p.IsPresent)
	assert.False(t, s.Participants()[0].IsPresent)

	_, err = s.RemoveParticipant("nobody")
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestCloseReleasesCapture(t *testing.T) {
	s, _ := newTestSession(t)
	h := media.NewHandleFor(media.DefaultConstraints)
	require.NoError(t, s.AttachCapture(media.Granted(h)))
	doc := s.UploadDocument("notes.txt", "text/plain", []byte("x"))

	s.Close()
	s.Close()

	assert.True(t, s.Closed())
	assert.True(t, h.Released())
	_, _, err := s.DocumentContent(doc.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

package visitor

import (
	"testing"
	"time"

	"aarohan/models"
	"aarohan/services/courtroom"
	"aarohan/services/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCase(t *testing.T, id string) models.CaseRecord {
	t.Helper()
	c, ok := models.FindSampleCase(id)
	require.True(t, ok)
	return c
}

func TestFlashes(t *testing.T) {
	v := NewStore().Create()
	v.Success("saved")
	v.Error("failed")

	flashes := v.TakeFlashes()
	assert.Equal(t, []Flash{{FlashSuccess, "saved"}, {FlashError, "failed"}}, flashes)
	assert.Empty(t, v.TakeFlashes())
}

func TestNavigationCase(t *testing.T) {
	v := NewStore().Create()

	_, ok := v.TakeNavigationCase("1a2b3c4d")
	assert.False(t, ok)

	v.SetNavigationCase(sampleCase(t, "1a2b3c4d"))
	got, ok := v.TakeNavigationCase("1a2b3c4d")
	require.True(t, ok)
	assert.Equal(t, "CRL-2025-1493", got.CaseNumber)

	_, ok = v.TakeNavigationCase("1a2b3c4d")
	assert.False(t, ok, "payload is consumed")

	v.SetNavigationCase(sampleCase(t, "1a2b3c4d"))
	_, ok = v.TakeNavigationCase("3i4j5k6l")
	assert.False(t, ok)
	_, ok = v.TakeNavigationCase("1a2b3c4d")
	assert.False(t, ok, "mismatched payload is discarded")
}

func TestCourtroomOwnership(t *testing.T) {
	v := NewStore().Create()

	first := courtroom.NewSession(sampleCase(t, "1a2b3c4d"), courtroom.DefaultCounsel)
	h := media.NewHandleFor(media.DefaultConstraints)
	require.NoError(t, first.AttachCapture(media.Granted(h)))
	v.OpenCourtroom(first)

	assert.Same(t, first, v.Courtroom("1a2b3c4d"))
	assert.Nil(t, v.Courtroom("3i4j5k6l"))

	second := courtroom.NewSession(sampleCase(t, "3i4j5k6l"), courtroom.DefaultCounsel)
	v.OpenCourtroom(second)
	assert.True(t, first.Closed())
	assert.True(t, h.Released())

	v.CloseCourtroom()
	assert.True(t, second.Closed())
	assert.Nil(t, v.Courtroom("3i4j5k6l"))
}

func TestStoreGetOrCreate(t *testing.T) {
	s := NewStore()

	v, created := s.GetOrCreate("")
	assert.True(t, created)

	again, created := s.GetOrCreate(v.ID)
	assert.False(t, created)
	assert.Same(t, v, again)

	_, created = s.GetOrCreate("unknown")
	assert.True(t, created)
	assert.Equal(t, 2, s.Len())
}

func TestStorePrune(t *testing.T) {
	now := time.Date(2025, 4, 18, 10, 0, 0, 0, time.UTC)
	s := NewStore()
	s.now = func() time.Time { return now }

	idle := s.Create()
	session := courtroom.NewSession(sampleCase(t, "1a2b3c4d"), courtroom.DefaultCounsel)
	idle.OpenCourtroom(session)

	now = now.Add(time.Hour)
	active := s.Create()

	assert.Equal(t, 1, s.Prune(30*time.Minute))
	assert.True(t, session.Closed())
	_, ok := s.Get(idle.ID)
	assert.False(t, ok)
	_, ok = s.Get(active.ID)
	assert.True(t, ok)
}

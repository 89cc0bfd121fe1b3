package services

import (
	"testing"
	"time"

	"aarohan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Reusing setupTestDB pattern (locally scoped to avoid conflicts if parallel)
func setupAuthTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Session{}))
	return db
}

func TestSessionLifecycle(t *testing.T) {
	db := setupAuthTestDB(t)
	user := &IdentityUser{
		ID:       "user-123",
		Email:    "meera@example.com",
		Metadata: map[string]interface{}{"role": "lawyer", "name": "Adv. Meera Iyer"},
	}

	// 1. Create Session
	session, err := CreateSession(db, user, "127.0.0.1", "TestAgent")
	require.NoError(t, err)
	assert.Len(t, session.Token, SessionTokenLength*2)
	assert.Equal(t, "user-123", session.ProviderUserID)
	assert.Equal(t, "Adv. Meera Iyer", session.Name)
	assert.True(t, session.IsLawyer())
	assert.WithinDuration(t, time.Now().Add(DefaultSessionDuration), session.ExpiresAt, 10*time.Second)

	// 2. Validate Session (Valid)
	valid, err := ValidateSession(db, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, valid.ID)

	// 3. Validate Session (Invalid Token)
	_, err = ValidateSession(db, "invalid-token")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// 4. Delete Session
	require.NoError(t, DeleteSession(db, session.Token))

	// 5. Validate Deleted Session
	_, err = ValidateSession(db, session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionExpiry(t *testing.T) {
	db := setupAuthTestDB(t)

	// Create a manually expired session
	token := "expired-token"
	require.NoError(t, db.Create(&models.Session{
		ID:        "sess-expired",
		Email:     "old@example.com",
		Role:      models.RoleLawyer,
		Token:     token,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
	}).Error)

	// Should return error and delete the session
	sess, err := ValidateSession(db, token)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Nil(t, sess)

	var count int64
	db.Model(&models.Session{}).Where("token = ?", token).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCleanupExpiredSessions(t *testing.T) {
	db := setupAuthTestDB(t)

	// Seed mixed sessions
	db.Create(&models.Session{ID: "sess-valid", Email: "a@example.com", Role: models.RoleUser, Token: "valid", ExpiresAt: time.Now().Add(time.Hour)})
	db.Create(&models.Session{ID: "sess-expired-1", Email: "b@example.com", Role: models.RoleUser, Token: "exp1", ExpiresAt: time.Now().Add(-time.Hour)})
	db.Create(&models.Session{ID: "sess-expired-2", Email: "c@example.com", Role: models.RoleUser, Token: "exp2", ExpiresAt: time.Now().Add(-2 * time.Hour)})

	removed, err := CleanupExpiredSessions(db)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	var remaining []models.Session
	db.Find(&remaining)
	require.Len(t, remaining, 1)
	assert.Equal(t, "sess-valid", remaining[0].ID)
}

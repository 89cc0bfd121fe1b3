package jobs

import (
	"testing"
	"time"

	"aarohan/models"
	"aarohan/services/visitor"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCleanupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+uuid.New().String()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Session{}))
	return db
}

func TestRunCleanup(t *testing.T) {
	db := setupCleanupTestDB(t)

	expired := models.Session{ID: uuid.New().String(), Email: "old@test.com", Role: models.RoleUser, Token: "expired", ExpiresAt: time.Now().UTC().Add(-time.Hour)}
	live := models.Session{ID: uuid.New().String(), Email: "new@test.com", Role: models.RoleLawyer, Token: "live", ExpiresAt: time.Now().UTC().Add(time.Hour)}
	require.NoError(t, db.Create(&expired).Error)
	require.NoError(t, db.Create(&live).Error)

	visitors := visitor.NewStore()
	visitors.Create()

	result := RunCleanup(db, visitors, time.Hour)
	assert.Equal(t, int64(1), result.Sessions)
	assert.Equal(t, 0, result.Visitors)

	var count int64
	db.Model(&models.Session{}).Count(&count)
	assert.Equal(t, int64(1), count)

	result = RunCleanup(db, visitors, -time.Minute)
	assert.Equal(t, 1, result.Visitors)
	assert.Equal(t, 0, visitors.Len())
}

func TestStartScheduler(t *testing.T) {
	db := setupCleanupTestDB(t)
	c, err := StartScheduler(db, visitor.NewStore(), time.Hour)
	require.NoError(t, err)
	defer c.Stop()

	assert.Len(t, c.Entries(), 1)
}

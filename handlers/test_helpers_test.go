package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"aarohan/config"
	"aarohan/db"
	"aarohan/middleware"
	"aarohan/models"
	"aarohan/services"
	"aarohan/services/visitor"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.AutoMigrate(&models.Session{})
	assert.NoError(t, err)

	// Set global DB
	db.DB = testDB

	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", &config.Config{
		Environment: "test",
		AppURL:      "https://aarohan.test",
		MaxUploadMB: 1,
	})

	return e, c, rec
}

// withVisitor attaches a fresh state container to the context
func withVisitor(c echo.Context) *visitor.Visitor {
	v := visitor.NewStore().Create()
	c.Set(middleware.ContextKeyVisitor, v)
	return v
}

func flashMessages(v *visitor.Visitor) []string {
	var out []string
	for _, f := range v.TakeFlashes() {
		out = append(out, f.Message)
	}
	return out
}

type mockIdentityProvider struct {
	mock.Mock
}

func (m *mockIdentityProvider) SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) error {
	args := m.Called(ctx, email, password, metadata)
	return args.Error(0)
}

func (m *mockIdentityProvider) SignIn(ctx context.Context, email, password string) (*services.IdentityUser, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(0).(*services.IdentityUser)
	return user, args.Error(1)
}

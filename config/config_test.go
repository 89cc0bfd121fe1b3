package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("APP_URL", "https://aarohan.example/")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_PROJECT_REF", "abcd")
	t.Setenv("SUPABASE_ANON_KEY", "anon")
	t.Setenv("MAX_UPLOAD_MB", "")
	t.Setenv("COOKIE_SECURE", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "https://aarohan.example", cfg.AppURL)
	assert.Equal(t, DefaultMaxUploadMB, cfg.MaxUploadMB)
	assert.False(t, cfg.SecureCookies)
	assert.NoError(t, cfg.ValidateIdentityProvider())
}

func TestValidateIdentityProvider(t *testing.T) {
	cfg := &Config{}
	assert.EqualError(t, cfg.ValidateIdentityProvider(), "SUPABASE_ANON_KEY is not set")

	cfg.SupabaseAnonKey = "anon"
	assert.Error(t, cfg.ValidateIdentityProvider())

	cfg.SupabaseURL = "https://project.supabase.co"
	assert.NoError(t, cfg.ValidateIdentityProvider())
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "25")
	assert.Equal(t, 25, getEnvInt("TEST_INT", 1))

	t.Setenv("TEST_INT", "-3")
	assert.Equal(t, 1, getEnvInt("TEST_INT", 1))

	t.Setenv("TEST_INT", "abc")
	assert.Equal(t, 1, getEnvInt("TEST_INT", 1))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "yes")
	assert.True(t, getEnvBool("TEST_BOOL", false))

	t.Setenv("TEST_BOOL", "off")
	assert.False(t, getEnvBool("TEST_BOOL", true))

	t.Setenv("TEST_BOOL", "maybe")
	assert.True(t, getEnvBool("TEST_BOOL", true))
}

func TestMaxUploadBytes(t *testing.T) {
	assert.Equal(t, int64(2<<20), (&Config{MaxUploadMB: 2}).MaxUploadBytes())
	assert.Equal(t, int64(DefaultMaxUploadMB<<20), (&Config{}).MaxUploadBytes())
}

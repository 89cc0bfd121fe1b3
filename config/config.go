package config

import (
	"os"
	"strconv"
	"strings"

	"aarohan/logging"

	"github.com/joho/godotenv"
)

const (
	// DefaultMaxUploadMB caps courtroom document uploads held in memory
	DefaultMaxUploadMB = 10
	// DefaultVisitorIdleMinutes is how long an idle visitor's state is retained
	DefaultVisitorIdleMinutes = 120
)

type Config struct {
	ServerPort     string
	DBPath         string
	Environment    string
	AppURL         string
	AllowedOrigins []string
	SecureCookies  bool
	// Identity provider (Supabase GoTrue)
	SupabaseURL        string
	SupabaseProjectRef string
	SupabaseAnonKey    string
	// Courtroom
	MaxUploadMB        int
	VisitorIdleMinutes int
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	envErr := godotenv.Load()

	environment := getEnv("ENVIRONMENT", "development")
	logging.Init(environment)
	if envErr != nil {
		logging.L().Info("No .env file found, using system environment variables")
	}

	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		DBPath:             getEnv("DB_PATH", "db/app.db"),
		Environment:        environment,
		AppURL:             strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		AllowedOrigins:     strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		SecureCookies:      getEnvBool("COOKIE_SECURE", environment == "production"),
		SupabaseURL:        strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseProjectRef: getEnv("SUPABASE_PROJECT_REF", ""),
		SupabaseAnonKey:    getEnv("SUPABASE_ANON_KEY", ""),
		MaxUploadMB:        getEnvInt("MAX_UPLOAD_MB", DefaultMaxUploadMB),
		VisitorIdleMinutes: getEnvInt("VISITOR_IDLE_MINUTES", DefaultVisitorIdleMinutes),
	}

	if err := cfg.ValidateIdentityProvider(); err != nil {
		if cfg.IsProduction() {
			logging.L().Fatalf("[CRITICAL] %v", err)
		}
		logging.L().Warnf("[WARNING] %v. Sign-in and sign-up will fail until it is configured.", err)
	}

	return cfg
}

// IsProduction reports whether the app runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ValidateIdentityProvider checks that the Supabase client can be built
func (c *Config) ValidateIdentityProvider() error {
	if c.SupabaseAnonKey == "" {
		return errMissing("SUPABASE_ANON_KEY")
	}
	if c.SupabaseURL == "" && c.SupabaseProjectRef == "" {
		return errMissing("SUPABASE_URL or SUPABASE_PROJECT_REF")
	}
	return nil
}

// MaxUploadBytes returns the upload cap in bytes
func (c *Config) MaxUploadBytes() int64 {
	if c.MaxUploadMB <= 0 {
		return DefaultMaxUploadMB << 20
	}
	return int64(c.MaxUploadMB) << 20
}

type missingError string

func (e missingError) Error() string { return string(e) + " is not set" }

func errMissing(key string) error { return missingError(key) }

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		logging.L().Debugf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		logging.L().Warnf("Invalid value for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

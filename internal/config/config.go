package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort  string
	GinMode     string
	LogLevel    string
	LogFormat   string
	DatabaseURL string
	MaxDBConns  int32
	RedisURL    string
	JWTSecret   string
	JWTExpiry   time.Duration
	BcryptCost  int
	// CourseAPIBaseURL is the base URL of the upstream course-data API.
	CourseAPIBaseURL string
	// FallbackTerms is the ordered list of terms (most recent first) the
	// catalog pipeline probes when a course is missing from the requested term.
	FallbackTerms []string
	// SubjectCacheTTL bounds how long the upstream subject directory is
	// cached in Redis.
	SubjectCacheTTL time.Duration
	// AllowedOrigins controls HTTP CORS and WebSocket origin validation.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "debug"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "pretty"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		MaxDBConns:       int32(getEnvInt("MAX_DB_CONNS", 16)),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379/0"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTExpiry:        time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,
		BcryptCost:       getEnvInt("BCRYPT_COST", 10),
		CourseAPIBaseURL: getEnv("COURSE_API_BASE_URL", ""),
		FallbackTerms:    splitList(getEnv("FALLBACK_TERMS", "Fall 2025,Spring 2025,Fall 2024,Spring 2024,Fall 2023")),
		SubjectCacheTTL:  time.Duration(getEnvInt("SUBJECT_CACHE_TTL_MINUTES", 1440)) * time.Minute,
		AllowedOrigins:   splitList(getEnv("ALLOWED_ORIGINS", "")),
	}
}

// Validate reports missing required configuration. The server refuses to
// start without these rather than limping along and failing on first use.
func (c *Config) Validate() error {
	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.CourseAPIBaseURL == "" {
		missing = append(missing, "COURSE_API_BASE_URL")
	}
	if len(c.FallbackTerms) == 0 {
		missing = append(missing, "FALLBACK_TERMS")
	}
	if len(missing) > 0 {
		return errors.New("missing required configuration: " + strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// splitList splits a comma-separated string into a trimmed slice.
// Returns nil if the input is empty.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// ABOUTME: Configuration loader for the RIMKI backend service
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port     string
	CacheTTL int // seconds, for the quiz list cache

	// Auth
	JWTSecret    string        // HMAC signing key for bearer tokens
	TokenTTL     time.Duration // token lifetime, default 24h
	DemoMode     bool          // accept DemoPassword for any account (default: false)
	DemoPassword string        // fallback password honored only in demo mode

	// Seed account (created at bootstrap when the store is empty)
	SeedUsername string
	SeedPassword string
	SeedEmail    string

	// Storage
	DBPath      string // sqlite file; empty = in-memory store
	UploadDir   string
	MaxUploadMB int

	// Rate Limiting
	RateLimitEnabled bool // Enable rate limiting on login (default: true)
	RateLimitLogin   int  // Login attempts per minute per IP (default: 5)

	// Chat assistant (optional)
	AnthropicAPIKey string
	ChatModel       string

	// External quiz builder API (optional)
	QuizAPIUrl   string
	QuizAPIKey   string
	QuizLinkBase string
}

// DemoFallbackPassword returns the fallback password, or "" when demo mode is off.
// The fallback is the original deployment's unconditional backdoor, kept only
// behind an explicit opt-in.
func (c *Config) DemoFallbackPassword() string {
	if !c.DemoMode {
		return ""
	}
	return c.DemoPassword
}

// ChatConfigured returns true if the Anthropic proxy is enabled
func (c *Config) ChatConfigured() bool {
	return c.AnthropicAPIKey != ""
}

// QuizAPIConfigured returns true if quiz creation should call the external builder
func (c *Config) QuizAPIConfigured() bool {
	return c.QuizAPIUrl != ""
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		CacheTTL: getEnvInt("CACHE_TTL", 30),

		JWTSecret:    getEnv("JWT_SECRET", "secret"),
		TokenTTL:     time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		DemoMode:     getEnvBool("DEMO_MODE", false),
		DemoPassword: getEnv("DEMO_PASSWORD", "admin123"),

		SeedUsername: getEnv("SEED_USERNAME", "admin"),
		SeedPassword: getEnv("SEED_PASSWORD", "admin123"),
		SeedEmail:    getEnv("SEED_EMAIL", "admin@rimki.com"),

		DBPath:      os.Getenv("DB_PATH"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 10),

		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitLogin:   getEnvInt("RATE_LIMIT_LOGIN", 5),

		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		ChatModel:       getEnv("CHAT_MODEL", "claude-3-5-haiku-latest"),

		QuizAPIUrl:   ensureScheme(os.Getenv("QUIZ_API_URL")),
		QuizAPIKey:   os.Getenv("QUIZ_API_KEY"),
		QuizLinkBase: getEnv("QUIZ_LINK_BASE", "https://rimki-quiz.com"),
	}

	// Validate required fields
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must not be empty")
	}
	if cfg.TokenTTL < time.Minute {
		return nil, fmt.Errorf("TOKEN_TTL_HOURS too small: %s", cfg.TokenTTL)
	}
	if cfg.MaxUploadMB < 1 || cfg.MaxUploadMB > 1024 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be between 1 and 1024, got %d", cfg.MaxUploadMB)
	}
	if cfg.RateLimitLogin < 1 || cfg.RateLimitLogin > 10000 {
		return nil, fmt.Errorf("RATE_LIMIT_LOGIN must be between 1 and 10000, got %d", cfg.RateLimitLogin)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// ensureScheme adds https:// prefix if the URL has no scheme
func ensureScheme(url string) string {
	if url == "" {
		return url
	}
	if !strings.Contains(url, "://") {
		return "https://" + url
	}
	return url
}

package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultAvatarURL is shown for profiles that have not uploaded an avatar.
const DefaultAvatarURL = "https://firebasestorage.googleapis.com/v0/b/ask-fun-d10f0.appspot.com/o/images%2F3743297F-4CB4-415C-BA5E-05B131836B0B.jpg?alt=media&token=b3853009-6245-4de1-85e2-8e5eae2d6404"

// DefaultPrivacyStatement is the footer notice shown in the send modal.
const DefaultPrivacyStatement = "Your message is anonymous. We never share who sent it."

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Redis backs sessions and the profile cache. Empty means in-memory sessions, no cache.
	RedisURL        string
	ProfileCacheTTL time.Duration

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Profile page
	DesktopBreakpoint int    // env: DESKTOP_BREAKPOINT, default: 768 (px)
	DefaultAvatarURL  string // env: DEFAULT_AVATAR_URL
	PrivacyStatement  string // env: PRIVACY_STATEMENT
	SeedDevProfiles   bool   // env: SEED_DEV_PROFILES

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "AskFun"
	SiteTagline string // env: SITE_TAGLINE, default: "Anonymous messages for your community"
	SiteFooter  string // env: SITE_FOOTER
	SiteLogoURL string // env: SITE_LOGO_URL, default: "" (no logo, text only)
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:             getEnv("ENV", "development"),
		ServerAddr:      getEnv("SERVER_ADDR", ":3000"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:     getEnv("DATABASE_URL", "postgres://localhost:5432/askfun?sslmode=disable"),
		RedisURL:        getEnv("REDIS_URL", ""),
		ProfileCacheTTL: getEnvDuration("PROFILE_CACHE_TTL", 5*time.Minute),
		TLSEnabled:      getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:     getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:      getEnv("TLS_KEY_FILE", ""),
		SessionSecret:   getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		CORSOrigins:     getEnv("CORS_ORIGINS", ""),

		DesktopBreakpoint: getEnvInt("DESKTOP_BREAKPOINT", 768),
		DefaultAvatarURL:  getEnv("DEFAULT_AVATAR_URL", DefaultAvatarURL),
		PrivacyStatement:  getEnv("PRIVACY_STATEMENT", DefaultPrivacyStatement),
		SeedDevProfiles:   getEnv("SEED_DEV_PROFILES", "") != "",

		SiteTitle:   getEnv("SITE_TITLE", "AskFun"),
		SiteTagline: getEnv("SITE_TAGLINE", "Anonymous messages for your community"),
		SiteFooter:  getEnv("SITE_FOOTER", "AskFun - Anonymous messages for your community"),
		SiteLogoURL: getEnv("SITE_LOGO_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsCacheEnabled returns true if Redis is configured and profiles have a positive TTL.
func (c *Config) IsCacheEnabled() bool {
	return c.RedisURL != "" && c.ProfileCacheTTL > 0
}

// ProfileURL returns the canonical public URL of a profile page.
func (c *Config) ProfileURL(handle string) string {
	return c.BaseURL + "/communities/" + handle
}

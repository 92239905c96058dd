// Package config assembles the process configuration once at startup.
// Collaborators receive the struct (or a sub-struct) explicitly; nothing
// else in the codebase reads the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	Rating      RatingConfig
	SocialAuth  SocialAuthConfig
	SuperAdmin  SuperAdminConfig
	Log         LogConfig
}

// RatingConfig bounds the accepted article rating values.
type RatingConfig struct {
	Min int
	Max int
}

// SocialAuthConfig carries the callback URLs handed to the external
// social-login federation. The core never performs the OAuth dance; the
// URLs live here so they are assembled once rather than read ad hoc.
type SocialAuthConfig struct {
	GoogleCallbackURL   string
	FacebookCallbackURL string
	TwitterCallbackURL  string
}

// SuperAdminConfig carries the seed credentials for the bootstrap account.
type SuperAdminConfig struct {
	Email    string
	Username string
	Name     string
	Password string
	Role     string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from the environment, honoring a .env file when
// present.
func Load() (*Config, error) {
	// Fall back to the real environment when no .env file is present.
	_ = godotenv.Load()

	hostURL := getEnv("HOST_URL", "http://localhost:8080")
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("POSTGRES_CONN_STR", ""),
		Rating: RatingConfig{
			Min: getIntEnv("RATING_MIN", 1),
			Max: getIntEnv("RATING_MAX", 5),
		},
		SocialAuth: SocialAuthConfig{
			GoogleCallbackURL:   hostURL + "/api/v1/auth/google/callback",
			FacebookCallbackURL: hostURL + "/api/v1/auth/facebook/callback",
			TwitterCallbackURL:  hostURL + "/api/v1/auth/twitter/callback",
		},
		SuperAdmin: SuperAdminConfig{
			Email:    getEnv("SUPER_ADMIN_EMAIL", ""),
			Username: getEnv("SUPER_ADMIN_USERNAME", ""),
			Name:     getEnv("SUPER_ADMIN_NAME", ""),
			Password: getEnv("SUPER_ADMIN_PASSWORD", ""),
			Role:     getEnv("SUPER_ADMIN_ROLE", "superadmin"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("POSTGRES_CONN_STR is required")
	}
	if c.Rating.Max <= c.Rating.Min {
		return fmt.Errorf("RATING_MAX must be greater than RATING_MIN")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

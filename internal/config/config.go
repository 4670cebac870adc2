// Package config loads runtime configuration from environment variables.
// A missing or placeholder DATABASE_URL is not an error: the server then
// runs in demo mode on the in-memory store.
package config

import (
	"os"
	"strings"
)

// Config holds all runtime configuration for the API server.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	Mail        MailConfig
}

// MailConfig configures the outbound EmailJS-compatible sender. Sending is
// disabled when ServiceID is empty.
type MailConfig struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	UserID     string
}

// Load reads environment variables and returns a Config with defaults applied.
func Load() *Config {
	return &Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getenv("JWT_SECRET", "dev-secret-change-me"),
		Mail: MailConfig{
			Endpoint:   getenv("EMAILJS_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send"),
			ServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
			TemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
			UserID:     os.Getenv("EMAILJS_USER_ID"),
		},
	}
}

// DemoMode reports whether the server should run entirely on the in-memory
// store. True when DATABASE_URL is unset or still the template placeholder.
func (c *Config) DemoMode() bool {
	return c.DatabaseURL == "" || strings.Contains(c.DatabaseURL, "your_database_url_here")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

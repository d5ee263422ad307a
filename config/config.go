package config

import (
	"fmt"
	"os"
)

// Config holds everything the server reads from the environment.
// It is loaded once at startup; components receive the values they
// need instead of reading env vars at request time.
type Config struct {
	Port        string
	DatabaseURL string

	// JWTSecret signs session tokens. Required.
	JWTSecret string

	// Razorpay credentials. Optional at boot; payment endpoints
	// report a configuration error if they are used while unset.
	RazorpayKeyID     string
	RazorpayKeySecret string

	// SendGrid welcome-mail settings. Optional; mail is skipped when unset.
	SendGridAPIKey   string
	WelcomeEmailFrom string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:              os.Getenv("PORT"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		WelcomeEmailFrom:  os.Getenv("WELCOME_EMAIL_FROM"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	return cfg, nil
}

// RazorpayConfigured reports whether both gateway credentials are present.
func (c *Config) RazorpayConfigured() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

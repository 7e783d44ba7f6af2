package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port string

	JWTSecret string

	// CORS origin of the SPA
	FEURL string

	// outbound mail
	SMTPAddr  string // host:port handed to smtp.SendMail
	SMTPHost  string // host alone, for PLAIN auth
	EmailUser string
	EmailPass string

	// image hosting
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	CookieSecure bool
}

func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8000"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		FEURL: getenv("FE_URL", "http://localhost:5173"),

		SMTPAddr:  getenv("SMTP_ADDR", "smtp.gmail.com:587"),
		SMTPHost:  getenv("SMTP_HOST", "smtp.gmail.com"),
		EmailUser: os.Getenv("EMAIL_USER"),
		EmailPass: os.Getenv("EMAIL_PASS"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		CookieSecure: getenv("COOKIE_SECURE", "false") == "true",
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

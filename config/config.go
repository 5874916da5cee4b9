package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries every setting the application needs. It is built once in
// main and handed to the constructors that need it, so nothing reads the
// environment after startup.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Media    MediaConfig
	Google   GoogleConfig
	SMTP     SMTPConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Port       string
	Env        string // "development" or "production"
	CORSOrigin string
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
}

// MediaConfig points at the S3-compatible host that stores uploaded images.
type MediaConfig struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// BaseURL is the public prefix uploaded files are served from. Defaults
	// to <Endpoint>/<Bucket> (path-style).
	BaseURL string
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Enabled reports whether Google sign-in is configured.
func (g GoogleConfig) Enabled() bool {
	return g.ClientID != "" && g.ClientSecret != "" && g.RedirectURL != ""
}

// SMTPConfig is used for the contact-form notification email. Optional.
type SMTPConfig struct {
	Host     string
	Port     string
	From     string
	Password string
	NotifyTo string
}

func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.From != "" && s.NotifyTo != ""
}

// AdminConfig seeds the first back-office account on an empty database.
type AdminConfig struct {
	Email    string
	Password string
}

// Load reads .env (when present) and the process environment and returns a
// fully populated Config. Missing required variables are reported together.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	var missing []string
	must := func(key string) string {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:       opt("PORT", "8080"),
			Env:        opt("APP_ENV", "development"),
			CORSOrigin: opt("CORS_ORIGIN", "http://localhost:3000"),
		},
		Database: DatabaseConfig{
			URL: must("DATABASE_URL"),
		},
		JWT: JWTConfig{
			Secret: must("JWT_SECRET"),
		},
		Media: MediaConfig{
			Endpoint:  must("MEDIA_ENDPOINT"),
			Region:    opt("MEDIA_REGION", "auto"),
			Bucket:    must("MEDIA_BUCKET"),
			AccessKey: must("MEDIA_ACCESS_KEY"),
			SecretKey: must("MEDIA_SECRET_KEY"),
			BaseURL:   opt("MEDIA_BASE_URL", ""),
		},
		Google: GoogleConfig{
			ClientID:     opt("GOOGLE_CLIENT_ID", ""),
			ClientSecret: opt("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  opt("GOOGLE_REDIRECT_URL", ""),
		},
		SMTP: SMTPConfig{
			Host:     opt("SMTP_HOST", ""),
			Port:     opt("SMTP_PORT", "587"),
			From:     opt("SMTP_FROM", ""),
			Password: opt("SMTP_PASSWORD", ""),
			NotifyTo: opt("SMTP_NOTIFY_TO", ""),
		},
		Admin: AdminConfig{
			Email:    opt("FIRST_ADMIN_EMAIL", ""),
			Password: opt("FIRST_ADMIN_PASSWORD", ""),
		},
	}

	if cfg.Media.BaseURL == "" {
		cfg.Media.BaseURL = strings.TrimSuffix(cfg.Media.Endpoint, "/") + "/" + cfg.Media.Bucket
	}
	cfg.Media.BaseURL = strings.TrimSuffix(cfg.Media.BaseURL, "/")

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

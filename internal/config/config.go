// Package config loads the suite configuration from environment variables,
// with optional .env autoload. Base URLs and the superadmin account default
// to the shared dev deployment; database credentials have no defaults and
// gate the suites that need them.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAuthBaseURL   = "https://auth.dev-cinescope.coconutqa.ru"
	defaultMoviesBaseURL = "https://api.dev-cinescope.coconutqa.ru"
	defaultUIBaseURL     = "https://dev-cinescope.coconutqa.ru"

	defaultUITimeout = 10 * time.Second
)

type Config struct {
	AuthBaseURL   string
	MoviesBaseURL string
	UIBaseURL     string

	SuperAdmin SuperAdminCreds
	DB         DBConfig

	// UITimeout bounds every browser action and wait.
	UITimeout time.Duration
}

type SuperAdminCreds struct {
	Email    string
	Password string
}

type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
	SSLMode  string
}

// DSN renders the postgres connection string for the verification database.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// Configured reports whether database credentials were provided at all.
func (c DBConfig) Configured() bool {
	return c.User != "" && c.Host != "" && c.Name != ""
}

// Load reads the configuration, first merging a .env file if one is
// present in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AuthBaseURL:   getenv("AUTH_BASE_URL", defaultAuthBaseURL),
		MoviesBaseURL: getenv("MOVIES_BASE_URL", defaultMoviesBaseURL),
		UIBaseURL:     getenv("UI_BASE_URL", defaultUIBaseURL),
		SuperAdmin: SuperAdminCreds{
			Email:    os.Getenv("SUPERADMIN_EMAIL"),
			Password: os.Getenv("SUPERADMIN_PASSWORD"),
		},
		DB: DBConfig{
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Host:     os.Getenv("DB_HOST"),
			Port:     getenv("DB_PORT", "5432"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
		UITimeout: defaultUITimeout,
	}

	if ms := os.Getenv("UI_TIMEOUT_MS"); ms != "" {
		parsed, err := strconv.Atoi(ms)
		if err != nil {
			return nil, fmt.Errorf("invalid UI_TIMEOUT_MS %q: %w", ms, err)
		}
		cfg.UITimeout = time.Duration(parsed) * time.Millisecond
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

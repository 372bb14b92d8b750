// Package config loads command-line configuration from the environment.
//
// A .env file in the working directory is read first when present; values
// already set in the environment take precedence.
//
// Environment Variables:
//   - MAILGUN_API_KEY: Mailgun private API key (required)
//   - MAILGUN_BASE_URL: API root; "us" (default), "eu", or an https URL
//   - MAILROUTES_DRY_RUN: simulate create, update and delete (default: false)
//   - MAILROUTES_TIMEOUT: HTTP timeout as a Go duration (default: 30s)
//   - LOG_LEVEL: debug, info, warn or error (default: info)
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/syncteam/mailroutes/internal/api"
)

const (
	defaultTimeout  = api.DefaultTimeout
	defaultLogLevel = "info"
)

// ErrMissingAPIKey is returned by Validate when MAILGUN_API_KEY is unset.
var ErrMissingAPIKey = errors.New("MAILGUN_API_KEY is required")

// Config holds the settings for a command-line run.
type Config struct {
	APIKey   string
	BaseURL  string
	DryRun   bool
	Timeout  time.Duration
	LogLevel string
}

// Load reads an optional .env file and then the environment. It does not
// validate; call Validate before use.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		APIKey:   os.Getenv("MAILGUN_API_KEY"),
		BaseURL:  resolveBaseURL(os.Getenv("MAILGUN_BASE_URL")),
		Timeout:  defaultTimeout,
		LogLevel: getEnv("LOG_LEVEL", defaultLogLevel),
	}

	if v := os.Getenv("MAILROUTES_DRY_RUN"); v != "" {
		dryRun, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parse MAILROUTES_DRY_RUN: %w", err)
		}
		cfg.DryRun = dryRun
	}

	if v := os.Getenv("MAILROUTES_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse MAILROUTES_TIMEOUT: %w", err)
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}

// Validate checks that the configuration can be used to build a client.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("MAILGUN_BASE_URL must be an https URL, got %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("MAILROUTES_TIMEOUT must be positive, got %v", c.Timeout)
	}
	return nil
}

func resolveBaseURL(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "us":
		return api.DefaultBaseURL
	case "eu":
		return api.EUBaseURL
	default:
		return value
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

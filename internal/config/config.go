// Package config loads the immutable run configuration from the
// environment. Core packages never read the environment themselves; the
// Config struct is passed in explicitly.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	defaultTimezone        = "America/Toronto"
	defaultCredentialsFile = "credentials.json"
)

var defaultFeeds = []string{
	"https://openai.com/blog/rss.xml",
	"https://research.google/blog/rss",
}

type Config struct {
	Feeds           []string
	Timezone        string
	TemplatePath    string
	Recipients      []string
	Sender          string
	CredentialsFile string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Feeds:           splitList(os.Getenv("FEEDS")),
		Timezone:        envOr("TZ", defaultTimezone),
		TemplatePath:    os.Getenv("TEMPLATE_PATH"),
		Recipients:      splitList(os.Getenv("RECIPIENTS")),
		Sender:          os.Getenv("GMAIL_USER"),
		CredentialsFile: envOr("GMAIL_CREDENTIALS", defaultCredentialsFile),
	}
	if len(cfg.Feeds) == 0 {
		cfg.Feeds = append([]string(nil), defaultFeeds...)
	}
	return cfg
}

// Location resolves the configured time zone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	return loc, errors.Wrapf(err, "load time zone %q", c.Timezone)
}

// ValidateForSend checks the fields only delivery needs; preview runs
// skip it.
func (c Config) ValidateForSend() error {
	if c.Sender == "" {
		return errors.New("GMAIL_USER is required")
	}
	if len(c.Recipients) == 0 {
		return errors.New("RECIPIENTS is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

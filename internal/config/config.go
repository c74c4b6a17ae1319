// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the full process configuration.
type Config struct {
	TelegramToken string

	// DBPath is the single store-of-record file. Its directory is the only
	// thing the process needs to persist between deploys.
	DBPath string

	// Supabase backup target. Empty URL or key disables backups.
	SupabaseURL  string
	SupabaseKey  string
	BackupBucket string

	// Timezone all schedules are evaluated in.
	Timezone     *time.Location
	TimezoneName string
}

// Load reads configuration from environment variables. Only the bot token is
// required; everything else has a default or degrades a feature when absent.
func Load() (*Config, error) {
	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		return nil, errors.New("TELEGRAM_TOKEN is required")
	}

	tzName := env("BOT_TZ", "Europe/Madrid")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid BOT_TZ %q: %w", tzName, err)
	}

	return &Config{
		TelegramToken: token,
		DBPath:        filepath.Join(env("WEIGHT_DB_DIR", "data"), env("WEIGHT_DB_NAME", "weights.db")),
		SupabaseURL:   os.Getenv("SUPABASE_URL"),
		SupabaseKey:   os.Getenv("SUPABASE_ANON_KEY"),
		BackupBucket:  env("BACKUP_BUCKET", "weightlogs-backups"),
		Timezone:      loc,
		TimezoneName:  tzName,
	}, nil
}

// BackupsConfigured reports whether a remote snapshot target is set.
func (c *Config) BackupsConfigured() bool {
	return c.SupabaseURL != "" && c.SupabaseKey != ""
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package config loads leitner-box settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for leitner-box.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string
	// Storage selects the backend: "sql" or "memory".
	Storage string
	// DecksDir is the default directory watched for deck files.
	DecksDir string
	// ReminderStartHour and ReminderEndHour bound the hours during which the
	// remind daemon prints due-card reminders.
	ReminderStartHour int
	ReminderEndHour   int
}

// Load reads configuration from a .env file (if present) and the
// environment. Missing values fall back to defaults under the user's home
// directory.
func Load() (*Config, error) {
	// A missing .env file is fine; only real read errors matter and even
	// those should not stop a CLI run.
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".leitner-box")

	cfg := &Config{
		DBPath:            envOr("LEITNER_BOX_DB", filepath.Join(base, "leitner.db")),
		Storage:           envOr("LEITNER_BOX_STORAGE", "sql"),
		DecksDir:          envOr("LEITNER_BOX_DECKS", filepath.Join(base, "decks")),
		ReminderStartHour: envIntOr("LEITNER_BOX_REMIND_START", 8),
		ReminderEndHour:   envIntOr("LEITNER_BOX_REMIND_END", 22),
	}
	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 23 {
			return n
		}
	}
	return def
}

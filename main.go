// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/mtreilly/leitner-box/internal/cmd"
	"github.com/mtreilly/leitner-box/internal/config"
	"github.com/mtreilly/leitner-box/internal/trainer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "leitner-box: failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Storage backend selection via config / LEITNER_BOX_STORAGE.
	// Default: "sql" (persistent SQLite). Options: "sql", "memory".
	var store trainer.TrainerStore

	switch cfg.Storage {
	case "sql":
		// If SQLite fails (missing, corrupted, permissions), fall back to the
		// in-memory store so the tool remains operational without persistence.
		sqlStore, err := trainer.Open(cfg.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: cannot open SQLite database: %v\n", err)
			fmt.Fprintln(os.Stderr, "         falling back to in-memory store (no persistence)")
			store = trainer.NewMemStore()
			break
		}
		store = sqlStore

	case "memory":
		// In-memory only - degrades gracefully, no persistence
		store = trainer.NewMemStore()

	default:
		fmt.Fprintf(os.Stderr, "leitner-box: unknown storage backend %q (choose sql or memory)\n", cfg.Storage)
		os.Exit(1)
	}
	defer store.Close()

	sess := trainer.NewSession(store)

	root := cmd.NewRootCmd(cfg, sess)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

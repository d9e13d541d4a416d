// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mtreilly/leitner-box/internal/config"
	"github.com/mtreilly/leitner-box/internal/trainer"
)

func newWatchCmd(cfg *config.Config, sess *trainer.Session) *cobra.Command {
	var (
		dir        string
		update     bool
		debounceMs int
		oneShot    bool
	)

	cmd := &cobra.Command{
		Use:   "watch [directory]",
		Short: "Watch a folder for deck files and auto-import",
		Long: `Monitor a directory for new or changed deck files (.yaml, .yml, .xlsx,
.csv) and import them automatically.

Examples:
  leitner-box watch ~/decks
  leitner-box watch ~/Dropbox/decks --update
  leitner-box watch --one-shot`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				dir = args[0]
			}
			if dir == "" {
				dir = cfg.DecksDir
			}

			info, err := os.Stat(dir)
			if err != nil {
				return fmt.Errorf("cannot access directory %s: %w", dir, err)
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", dir)
			}

			if oneShot {
				return importExistingDecks(dir, sess, update)
			}
			return watchDeckDirectory(dir, sess, update, debounceMs)
		},
	}

	cmd.Flags().BoolVarP(&update, "update", "u", false, "Update existing cards instead of skipping them")
	cmd.Flags().IntVar(&debounceMs, "debounce", 1000, "Debounce milliseconds for file events")
	cmd.Flags().BoolVar(&oneShot, "one-shot", false, "Import existing deck files and exit (don't watch)")

	return cmd
}

func isDeckFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".xlsx", ".csv":
		return true
	}
	return false
}

func watchDeckDirectory(dir string, sess *trainer.Session, update bool, debounceMs int) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	log.Printf("Watching: %s", dir)
	log.Println("Press Ctrl+C to stop watching")

	// Editors fire several events per save; coalesce them per file.
	pending := make(map[string]*time.Timer)
	var pendingMu sync.Mutex

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isDeckFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}

			pendingMu.Lock()
			if timer, exists := pending[event.Name]; exists {
				timer.Stop()
			}
			pending[event.Name] = time.AfterFunc(time.Duration(debounceMs)*time.Millisecond, func() {
				pendingMu.Lock()
				delete(pending, event.Name)
				pendingMu.Unlock()

				if err := importDeckFile(event.Name, sess, update); err != nil {
					log.Printf("Failed to import %s: %v", event.Name, err)
				}
			})
			pendingMu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

func importExistingDecks(dir string, sess *trainer.Session, update bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && isDeckFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	if len(files) == 0 {
		fmt.Println("No deck files found")
		return nil
	}

	fmt.Printf("Found %d deck file(s), importing...\n", len(files))

	imported := 0
	failed := 0
	for _, f := range files {
		if err := importDeckFile(f, sess, update); err != nil {
			log.Printf("Failed: %s - %v", f, err)
			failed++
		} else {
			imported++
		}
	}

	fmt.Printf("\nImported: %d, Failed: %d\n", imported, failed)
	return nil
}

func importDeckFile(path string, sess *trainer.Session, update bool) error {
	log.Printf("Importing: %s", path)

	deck, err := readDeck(path, "", false)
	if err != nil {
		return err
	}
	result, err := trainer.ImportDeck(sess.Store(), deck, update)
	if err != nil {
		return err
	}

	log.Printf("Imported %s: %d created, %d updated, %d skipped",
		filepath.Base(path), result.Created, result.Updated, result.Skipped)
	for _, e := range result.Errors {
		log.Printf("  %s", e)
	}
	return nil
}
